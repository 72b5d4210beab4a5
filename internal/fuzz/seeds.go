package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"jsgen/internal/ast"
	"jsgen/internal/astio"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB cap for seed documents
	maxFuzzInput = 1 << 16
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addProgramSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || astio.FormatFromPath(path) != astio.FormatJSON {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addProgramSeeds encodes small hand-built programs, so the corpus reaches
// the statement kinds the testdata files do not.
func addProgramSeeds(f *testing.F) {
	for _, p := range seedPrograms() {
		doc, err := astio.Encode(p)
		if err != nil {
			continue
		}
		data, err := astio.Marshal(doc, astio.FormatJSON)
		if err != nil {
			continue
		}
		f.Add(clampSeed(data))
	}
}

func seedPrograms() []*ast.Program {
	name := ast.NewName

	fnProg := ast.NewProgram()
	fn := fnProg.NewFunction(fnProg.Top, "twice", "x")
	fn.Body.Stmts = []ast.Stmt{&ast.Return{X: ast.NewBinary(ast.OpMul, name("x"), ast.NewInt(2))}}
	fnProg.Add(ast.NewExprStmt(fn))

	tryProg := ast.NewProgram()
	tryProg.Add(&ast.Try{
		Block:   &ast.Block{Stmts: []ast.Stmt{&ast.Throw{X: ast.NewNew(name("Error"), ast.NewString("x"))}}},
		Catches: []*ast.Catch{{Param: "e", Body: &ast.Block{}}},
	})

	labelProg := ast.NewProgram()
	labelProg.Add(&ast.Label{Name: "outer", Stmt: &ast.While{
		Cond: ast.NewBool(true),
		Body: &ast.Break{Label: "outer"},
	}})

	return []*ast.Program{fnProg, tryProg, labelProg}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
