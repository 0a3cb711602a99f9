package generator

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// declNames lists the top-level names of a Go file. Methods are keyed by
// receiver type.
func declNames(t *testing.T, name string, src any) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, 0)
	require.NoError(t, err)
	var names []string
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names = append(names, "func "+d.Name.Name)
				continue
			}
			recv := d.Recv.List[0].Type
			if star, ok := recv.(*ast.StarExpr); ok {
				recv = star.X
			}
			names = append(names, "method "+recv.(*ast.Ident).Name+"."+d.Name.Name)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names = append(names, "type "+s.Name.Name)
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names = append(names, d.Tok.String()+" "+n.Name)
					}
				}
			}
		}
	}
	return names
}

// TestGeneratedMatchesEtalon keeps the hand-written message under test/ in
// step with what the plugin emits for the same proto.
func TestGeneratedMatchesEtalon(t *testing.T) {
	fdp := personProto("proto2")
	fdp.MessageType[0].NestedType = nil
	content := generatedContent(t, runPlugin(t, "", fdp))

	etalon, err := os.ReadFile("../test/etalon.go")
	require.NoError(t, err)

	assert.ElementsMatch(t,
		declNames(t, "etalon.go", etalon),
		declNames(t, "person.pb.leo.go", content),
	)
}
