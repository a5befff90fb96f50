package bail

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strconv"
	"sync"
)

// site identifies one textual bail invocation. The column and expression
// text are recovered from the caller's source file; when the file cannot
// be read (stripped build, relocated tree) they degrade to zero and a
// placeholder without affecting bail semantics.
type site struct {
	file string
	line int
	col  int
	expr string
}

func (s site) key() string {
	return s.file + ":" + strconv.Itoa(s.line) + ":" + strconv.Itoa(s.col)
}

func (s site) String() string {
	return s.key()
}

// callSite resolves the invocation skip frames above the caller.
func callSite(skip int) site {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return site{file: "unknown", expr: "expression"}
	}

	s := site{file: file, line: line, expr: "expression"}
	if col, expr, found := resolveCall(file, line); found {
		s.col = col
		s.expr = expr
	}
	return s
}

type sourceFile struct {
	fset *token.FileSet
	tree *ast.File
	src  []byte
	err  error
}

// fileCache holds one parsed AST per source file that contains at least one
// bail invocation. Bounded by program size, never evicted.
var fileCache sync.Map // file path -> *sourceFile

func loadSource(path string) *sourceFile {
	if cached, ok := fileCache.Load(path); ok {
		return cached.(*sourceFile)
	}

	sf := parseSource(path)
	cached, _ := fileCache.LoadOrStore(path, sf)
	return cached.(*sourceFile)
}

func parseSource(path string) *sourceFile {
	src, err := os.ReadFile(path)
	if err != nil {
		return &sourceFile{err: err}
	}

	fset := token.NewFileSet()
	tree, err := parser.ParseFile(fset, path, src, 0)
	if err != nil {
		return &sourceFile{err: err}
	}

	return &sourceFile{fset: fset, tree: tree, src: src}
}

// bailNames are the expander entry points whose call sites are resolved.
var bailNames = map[string]bool{
	"Get":   true,
	"Once":  true,
	"Quiet": true,
}

// resolveCall locates the bail call on the given line and returns its
// column and the source text of its argument. With several bail calls on
// one line, the leftmost wins.
func resolveCall(path string, line int) (col int, expr string, found bool) {
	sf := loadSource(path)
	if sf.err != nil {
		return 0, "", false
	}

	ast.Inspect(sf.tree, func(n ast.Node) bool {
		if found {
			return false
		}

		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		if !isBailCall(call) {
			return true
		}

		pos := sf.fset.Position(call.Pos())
		if pos.Line != line {
			return true
		}

		arg := call.Args[0]
		start := sf.fset.Position(arg.Pos()).Offset
		end := sf.fset.Position(arg.End()).Offset
		if start < 0 || end > len(sf.src) || start >= end {
			return true
		}

		col = pos.Column
		expr = string(sf.src[start:end])
		found = true
		return false
	})

	return col, expr, found
}

func isBailCall(call *ast.CallExpr) bool {
	switch fn := call.Fun.(type) {
	case *ast.SelectorExpr:
		return bailNames[fn.Sel.Name]
	case *ast.IndexExpr:
		// Explicit instantiation: bail.Get[int](...).
		if sel, ok := fn.X.(*ast.SelectorExpr); ok {
			return bailNames[sel.Sel.Name]
		}
	case *ast.Ident:
		// Dot import or same-package call.
		return bailNames[fn.Name]
	}
	return false
}
