package astio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jsgen/internal/ast"
	"jsgen/internal/format"
	"jsgen/internal/source"
)

func name(s string) *ast.NameRef { return ast.NewName(s) }

func sample() *ast.Program {
	p := ast.NewProgram()
	fn := p.NewFunction(p.Top, "area", "w", "h")
	fn.Body.Stmts = []ast.Stmt{&ast.Return{X: ast.NewBinary(ast.OpMul, name("w"), name("h"))}}
	late := ast.NewChameleon()
	late.Resolve(ast.NewDouble(math.Inf(-1)))
	pos := ast.NewName("x")
	pos.SetSource(source.Pos{Offset: 4, Line: 1, Column: 5})
	p.Add(
		(&ast.DocComment{}).Tag("const", "").TagExpr("default", ast.NewInt(3)),
		ast.NewExprStmt(fn),
		&ast.Vars{List: []*ast.Var{{Name: "x", Init: ast.NewInt(-2)}, {Name: "s", Init: ast.NewString("it's")}}, Multiline: true},
		&ast.For{
			InitVars: &ast.Vars{List: []*ast.Var{{Name: "i", Init: ast.NewInt(0)}}},
			Cond:     ast.NewBinary(ast.OpLt, name("i"), ast.NewInt(2)),
			Update:   ast.NewPostfix(ast.OpInc, name("i")),
			Body:     &ast.Block{Stmts: []ast.Stmt{ast.NewExprStmt(ast.NewPrefix(ast.OpDelete, &ast.ArrayAccess{X: name("o"), Index: name("i")}))}},
		},
		&ast.ForIn{IterVar: "k", Object: &ast.ObjectLit{Props: []*ast.Property{{Label: ast.NewString("a-b"), Value: &ast.ArrayLit{Elems: []ast.Expr{ast.NewBool(true), &ast.Null{}}}}}}, Body: &ast.Empty{}},
		&ast.Switch{Tag: pos, Members: []ast.SwitchMember{
			&ast.Case{Label: ast.NewVerbatim("raw", '"'), Stmts: []ast.Stmt{&ast.Break{}}},
			&ast.Default{Stmts: []ast.Stmt{&ast.Throw{X: ast.NewNew(ast.NewQualified(name("ns"), "Err"), &ast.RegExp{Pattern: "a+", Flags: "g"})}}},
		}},
		&ast.Try{
			Block:   &ast.Block{Stmts: []ast.Stmt{&ast.Label{Name: "l", Stmt: &ast.DoWhile{Body: &ast.Continue{Label: "l"}, Cond: &ast.This{}}}}},
			Catches: []*ast.Catch{{Param: "e", Body: &ast.Block{Stmts: []ast.Stmt{&ast.Debugger{}}}}},
			Finally: &ast.Block{},
		},
		&ast.If{
			Cond: &ast.Conditional{Test: name("a"), Then: late, Else: ast.NewDouble(0.5)},
			Then: ast.NewExprStmt(ast.NewCall(name("f"))),
			Else: &ast.While{Cond: name("b"), Body: &ast.Empty{}},
		},
	)
	return p
}

func TestDocumentRoundTrip(t *testing.T) {
	want, err := format.Program(sample(), format.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, f := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(f.String(), func(t *testing.T) {
			doc, err := Encode(sample())
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			data, err := Marshal(doc, f)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			back, err := Unmarshal(data, f)
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			prog, err := Decode(back)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			got, err := format.Program(prog, format.Options{})
			if err != nil {
				t.Fatalf("render decoded: %v", err)
			}
			if string(got) != string(want) {
				t.Fatalf("round trip changed output:\nwant:\n%s\ngot:\n%s", want, got)
			}
		})
	}
}

func TestDecodeDeclaresBindings(t *testing.T) {
	doc, err := Encode(sample())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	prog, err := Decode(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	top := prog.TopScope()
	for _, n := range []string{"area", "x", "s", "i", "k", "e"} {
		if _, ok := top.Lookup(n); !ok {
			t.Errorf("%q not declared in the top scope", n)
		}
	}
	fn := prog.Stmts[1].(*ast.ExprStmt).X.(*ast.Function)
	inner := prog.Scope(fn.Scope)
	for _, n := range []string{"w", "h"} {
		if _, ok := inner.Lookup(n); !ok {
			t.Errorf("parameter %q not declared in the function scope", n)
		}
	}
	if _, ok := top.Lookup("w"); ok {
		t.Errorf("parameter leaked into the top scope")
	}
}

func TestDecodeKeepsPositions(t *testing.T) {
	doc, err := Encode(sample())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	prog, err := Decode(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	tag := prog.Stmts[5].(*ast.Switch).Tag
	pos, ok := tag.Source().(source.Pos)
	if !ok || pos.Offset != 4 || pos.Column != 5 {
		t.Fatalf("position lost: %#v", tag.Source())
	}
}

func TestEncodeRejectsUnresolvedChameleon(t *testing.T) {
	p := ast.NewProgram()
	p.Add(ast.NewExprStmt(ast.NewCall(name("f"), ast.NewChameleon())))
	_, err := Encode(p)
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("want ErrUnresolved, got %v", err)
	}
	if !strings.Contains(err.Error(), "program.stmts[0].x.args[0]") {
		t.Fatalf("error does not locate the node: %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	program := func(stmts ...*Node) *Document {
		return &Document{Version: SchemaVersion, Program: &Node{Kind: "Program", Stmts: stmts}}
	}
	tests := []struct {
		name string
		doc  *Document
		path string
	}{
		{"unknown kind", program(&Node{Kind: "Goto"}), "program.stmts[0]"},
		{"expression as statement", program(&Node{Kind: "Int"}), "program.stmts[0]"},
		{"missing child", program(&Node{Kind: "While", Cond: &Node{Kind: "This"}}), "program.stmts[0].body"},
		{"bad operator", program(&Node{Kind: "ExprStmt", X: &Node{Kind: "Binary", Op: "<=>", X: &Node{Kind: "This"}, Y: &Node{Kind: "This"}}}), "program.stmts[0].x.op"},
		{"prefix-only operator as postfix", program(&Node{Kind: "ExprStmt", X: &Node{Kind: "Postfix", Op: "!", X: &Node{Kind: "This"}}}), "program.stmts[0].x.op"},
		{"bad number", program(&Node{Kind: "Return", X: &Node{Kind: "Double", Number: "one"}}), "program.stmts[0].x.number"},
		{"try without block", program(&Node{Kind: "Try", Finally: &Node{Kind: "Block"}}), "program.stmts[0].block"},
		{"wrong member", program(&Node{Kind: "Switch", X: &Node{Kind: "This"}, Members: []*Node{{Kind: "Block"}}}), "program.stmts[0].members[0]"},
		{"null argument", program(&Node{Kind: "ExprStmt", X: &Node{Kind: "Invocation", X: &Node{Kind: "This"}, Args: []*Node{nil}}}), "program.stmts[0].x.args[0]"},
		{"null array element", program(&Node{Kind: "Return", X: &Node{Kind: "ArrayLit", Args: []*Node{{Kind: "This"}, nil}}}), "program.stmts[0].x.args[1]"},
		{"root kind", &Document{Version: SchemaVersion, Program: &Node{Kind: "Block"}}, "program"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.doc)
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("want *DecodeError, got %v", err)
			}
			if de.Path != tt.path {
				t.Fatalf("want path %q, got %q (%v)", tt.path, de.Path, err)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("decode errors should match ErrMalformed")
			}
		})
	}
}

func TestDecodeNullElementFromJSON(t *testing.T) {
	src := `{"version": 1, "program": {"kind": "Program", "stmts": [
	  {"kind": "ExprStmt", "x": {"kind": "Invocation", "x": {"kind": "NameRef", "name": "f"}, "args": [null]}}
	]}}`
	doc, err := Unmarshal([]byte(src), FormatJSON)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	_, err = Decode(doc)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("want *DecodeError, got %v", err)
	}
	if de.Path != "program.stmts[0].x.args[0]" {
		t.Fatalf("want path of the null argument, got %q", de.Path)
	}
}

func TestDecodeRejectsOtherVersions(t *testing.T) {
	_, err := Decode(&Document{Version: SchemaVersion + 1, Program: &Node{Kind: "Program"}})
	if !errors.Is(err, ErrVersion) {
		t.Fatalf("want ErrVersion, got %v", err)
	}
}

func TestJSONRejectsUnknownFields(t *testing.T) {
	_, err := Unmarshal([]byte(`{"version":1,"program":{"kind":"Program","colour":"red"}}`), FormatJSON)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
}

func TestHandWrittenJSON(t *testing.T) {
	src := `{
  "version": 1,
  "program": {"kind": "Program", "stmts": [
    {"kind": "ExprStmt", "x": {"kind": "Invocation",
      "x": {"kind": "NameRef", "name": "log", "x": {"kind": "NameRef", "name": "console"}},
      "args": [{"kind": "String", "text": "he said \"hi\""}]}}
  ]}
}`
	doc, err := Unmarshal([]byte(src), FormatJSON)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	prog, err := Decode(doc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out, err := format.Program(prog, format.Options{Compact: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `console.log('he said "hi"');`; string(out) != want {
		t.Fatalf("want %q, got %q", want, out)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.json":        FormatJSON,
		"dir/b.MPK":     FormatMsgpack,
		"c.msgpack":     FormatMsgpack,
		"d.js":          FormatUnknown,
		"no-extension":  FormatUnknown,
		"e.tar.msgpack": FormatMsgpack,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("%s: want %s, got %s", path, want, got)
		}
	}
	if f, err := ParseFormat(" MsgPack "); err != nil || f != FormatMsgpack {
		t.Errorf("ParseFormat: got %s, %v", f, err)
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Errorf("ParseFormat accepted yaml")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	doc, err := Encode(sample())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	data, err := Marshal(doc, FormatMsgpack)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(dir, "sample.mpk")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(back.Program.Stmts) != len(sample().Stmts) {
		t.Fatalf("want %d statements, got %d", len(sample().Stmts), len(back.Program.Stmts))
	}
	if _, err := Load(filepath.Join(dir, "sample.txt")); err == nil {
		t.Fatalf("unknown extension should fail")
	}
}
