package format

import (
	"strings"
	"testing"

	"jsgen/internal/ast"
	"jsgen/internal/diag"
)

func program(stmts ...ast.Stmt) *ast.Program {
	p := ast.NewProgram()
	p.Add(stmts...)
	return p
}

func TestIfElseChain(t *testing.T) {
	chain := &ast.If{
		Cond: name("a"),
		Then: block(call("f")),
		Else: &ast.If{
			Cond: name("b"),
			Then: block(call("g")),
			Else: block(call("h")),
		},
	}
	runLayoutCases(t, []layoutCase{
		{"chain", program(chain),
			"if (a) {\n  f();\n}\nelse if (b) {\n  g();\n}\nelse {\n  h();\n}\n",
			"if(a){f();}else if(b){g();}else{h();}"},
		{"simple-bodies", program(&ast.If{Cond: name("a"), Then: call("f"), Else: call("g")}),
			"if (a) f(); else g();\n",
			"if(a)f();else g();"},
		{"dangling-else", program(&ast.If{
			Cond: name("a"),
			Then: &ast.If{Cond: name("b"), Then: call("x")},
			Else: call("y"),
		}),
			"if (a) {\n  if (b)\n    x();\n}\nelse y();\n",
			"if(a){if(b)x();}else y();"},
		{"inline-jumps", program(&ast.If{
			Cond: name("a"),
			Then: &ast.Return{X: name("x")},
			Else: &ast.Throw{X: name("e")},
		}),
			"if (a) return x; else throw e;\n",
			"if(a)return x;else throw e;"},
		{"nested-if-then", program(&ast.If{
			Cond: name("a"),
			Then: &ast.If{Cond: name("b"), Then: call("x"), Else: call("y")},
			Else: call("z"),
		}),
			"if (a)\n  if (b) x(); else y();\nelse z();\n",
			"if(a)if(b)x();else y();else z();"},
		{"empty-then", program(&ast.If{Cond: name("a"), Then: &ast.Empty{}}), "if (a);\n", "if(a);"},
	})
}

func TestLoops(t *testing.T) {
	forLoop := &ast.For{
		InitVars: &ast.Vars{List: []*ast.Var{{Name: "i", Init: ast.NewInt(0)}}},
		Cond:     bin(ast.OpLt, name("i"), name("n")),
		Update:   ast.NewPostfix(ast.OpInc, name("i")),
		Body:     block(call("f", name("i"))),
	}
	runLayoutCases(t, []layoutCase{
		{"for", program(forLoop),
			"for (var i = 0; i < n; i++) {\n  f(i);\n}\n",
			"for(var i=0;i<n;i++){f(i);}"},
		{"for-empty-header", program(&ast.For{Body: &ast.Empty{}}), "for (;;);\n", "for(;;);"},
		{"for-init-with-in", program(&ast.For{
			InitExpr: bin(ast.OpAsg, name("x"), bin(ast.OpIn, name("a"), name("b"))),
			Body:     &ast.Empty{},
		}), "for ((x = a in b);;);\n", "for((x=a in b);;);"},
		{"for-var-with-in", program(&ast.For{
			InitVars: &ast.Vars{List: []*ast.Var{{Name: "x", Init: bin(ast.OpIn, name("a"), name("b"))}}},
			Body:     &ast.Empty{},
		}), "for (var x = (a in b);;);\n", "for(var x=(a in b);;);"},
		{"for-in-var", program(&ast.ForIn{IterVar: "k", Object: name("o"), Body: block()}),
			"for (var k in o) {}\n", "for(var k in o){}"},
		{"for-in-target", program(&ast.ForIn{IterExpr: ast.NewQualified(name("a"), "b"), Object: name("o"), Body: call("f")}),
			"for (a.b in o)\n  f();\n", "for(a.b in o)f();"},
		{"while", program(&ast.While{Cond: ast.NewBool(true), Body: &ast.Break{}}),
			"while (true)\n  break;\n", "while(true)break;"},
		{"do-while", program(&ast.DoWhile{Body: block(call("f")), Cond: name("a")}, call("g")),
			"do {\n  f();\n} while (a)\ng();\n", "do{f();}while(a);g();"},
		{"do-while-simple-body", program(&ast.DoWhile{Body: call("f"), Cond: name("a")}),
			"do\n  f();\nwhile (a)\n", "do f();while(a);"},
		{"labelled-continue", program(&ast.Label{Name: "outer", Stmt: &ast.While{
			Cond: ast.NewBool(true),
			Body: block(&ast.Continue{Label: "outer"}),
		}}), "outer: while (true) {\n  continue outer;\n}\n", "outer:while(true){continue outer;}"},
	})
}

func TestForWithBothInitializers(t *testing.T) {
	bad := &ast.For{
		InitExpr: bin(ast.OpAsg, name("i"), ast.NewInt(0)),
		InitVars: &ast.Vars{List: []*ast.Var{{Name: "j"}}},
		Body:     &ast.Empty{},
	}
	_, err := Program(program(bad), Options{})
	if !diag.IsContract(err) {
		t.Fatalf("expected contract violation, got %v", err)
	}
	if !strings.Contains(err.Error(), "For.InitExpr") {
		t.Fatalf("error does not name the node and field: %v", err)
	}
}

func TestSwitch(t *testing.T) {
	sw := &ast.Switch{
		Tag: name("x"),
		Members: []ast.SwitchMember{
			&ast.Case{Label: ast.NewInt(1), Stmts: []ast.Stmt{call("f"), &ast.Break{}}},
			&ast.Case{Label: ast.NewString("a")},
			&ast.Default{Stmts: []ast.Stmt{call("g")}},
		},
	}
	runLayoutCases(t, []layoutCase{
		{"switch", program(sw),
			"switch (x) {\n  case 1:\n    f();\n    break\n  case 'a':\n  default:\n    g();\n}\n",
			"switch(x){case 1:f();break;case 'a':default:g();}"},
	})
}

func TestTry(t *testing.T) {
	full := &ast.Try{
		Block:   block(call("a")),
		Catches: []*ast.Catch{{Param: "e", Body: block(call("b"))}},
		Finally: block(call("c")),
	}
	guarded := &ast.Try{
		Block: block(),
		Catches: []*ast.Catch{{
			Param: "e",
			Cond:  bin(ast.OpInstanceOf, name("e"), name("E")),
			Body:  block(),
		}},
	}
	runLayoutCases(t, []layoutCase{
		{"try-catch-finally", program(full),
			"try {\n  a();\n}\ncatch (e) {\n  b();\n}\nfinally {\n  c();\n}\n",
			"try{a();}catch(e){b();}finally{c();}"},
		{"guarded-catch", program(guarded),
			"try {}\ncatch (e if e instanceof E) {}\n",
			"try{}catch(e if e instanceof E){}"},
	})
}

func TestSimpleStatements(t *testing.T) {
	runLayoutCases(t, []layoutCase{
		{"vars", program(&ast.Vars{List: []*ast.Var{{Name: "a", Init: ast.NewInt(1)}, {Name: "b"}}}),
			"var a = 1, b;\n", "var a=1,b;"},
		{"vars-multiline", program(&ast.Vars{List: []*ast.Var{{Name: "a", Init: ast.NewInt(1)}, {Name: "b"}}, Multiline: true}),
			"var a = 1,\n  b;\n", "var a=1,b;"},
		{"vars-comma-init", program(&ast.Vars{List: []*ast.Var{{Name: "a", Init: bin(ast.OpComma, name("b"), name("c"))}}}),
			"var a = (b, c);\n", "var a=(b,c);"},
		{"return", program(&ast.Return{}, &ast.Return{X: name("x")}), "return;\nreturn x;\n", "return;return x;"},
		{"throw", program(&ast.Throw{X: ast.NewNew(name("Error"), ast.NewString("x"))}),
			"throw new Error('x');\n", "throw new Error('x');"},
		{"debugger", program(&ast.Debugger{}), "debugger;\n", "debugger;"},
		{"empty-skipped", program(&ast.Empty{}, call("f"), &ast.Empty{}), "f();\n", "f();"},
		{"global-block", program(&ast.Block{Global: true, Stmts: []ast.Stmt{call("a"), call("b")}}, call("c")),
			"a();\nb();\nc();\n", "a();b();c();"},
		{"nested-block", program(block(call("a")), call("b")), "{\n  a();\n}\nb();\n", "{a();}b();"},
		{"doc-comment-stmt", program(
			(&ast.DocComment{}).Tag("param", "a").Tag("return", "b"),
			ast.NewExprStmt(&ast.Function{Name: "f", Params: []*ast.Parameter{{Name: "a"}}, Body: block()}),
		), "/**\n * @param a\n * @return b\n */\nfunction f(a) {}\n", "/** @param a @return b */function f(a){}"},
		{"single-tag-doc", program((&ast.DocComment{}).Tag("const", "")), "/** @const */\n", "/** @const */"},
	})
}

func TestFunctionDeclarationStatement(t *testing.T) {
	fn := &ast.Function{Name: "f", Body: block(&ast.Return{X: ast.NewInt(1)})}
	runLayoutCases(t, []layoutCase{
		{"declaration", program(ast.NewExprStmt(fn), call("f")),
			"function f() {\n  return 1;\n}\nf();\n",
			"function f(){return 1;}f();"},
	})
}

func TestTruncatedBlocks(t *testing.T) {
	b := block(call("a"), call("b"), call("c"), call("d"), call("e"), call("f"))
	want := "{\n  a();\n  b();\n  c();\n  d();\n  [...]\n}\n"
	if got := Debug(b); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	short := block(call("a"))
	if got := Debug(short); got != "{\n  a();\n}\n" {
		t.Fatalf("short block must not be truncated: %q", got)
	}
}

func TestNodeRendersStructuralParts(t *testing.T) {
	runLayoutCases(t, []layoutCase{
		{"var", &ast.Var{Name: "a", Init: ast.NewInt(1)}, "a = 1", "a=1"},
		{"parameter", &ast.Parameter{Name: "p"}, "p", "p"},
		{"property", prop("k", ast.NewInt(1)), "k: 1", "k:1"},
		{"default", &ast.Default{Stmts: []ast.Stmt{call("f")}}, "default:\n  f();\n", "default:f();"},
		{"catch", &ast.Catch{Param: "e", Body: block()}, "catch (e) {}\n", "catch(e){}"},
	})
}

func TestExprStmtSourceMetadataIsForwarded(t *testing.T) {
	x := name("a")
	stmt := ast.NewExprStmt(x)
	x.SetSource("pos")
	if stmt.Source() != "pos" {
		t.Fatalf("statement must report its expression's source")
	}
	if _, err := Node(stmt, Options{}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
}
