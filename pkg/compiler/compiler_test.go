package compiler_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/zhsc-lang/zhsc/pkg/ast"
	"github.com/zhsc-lang/zhsc/pkg/compiler"
)

// Scenario 1: token contract skeleton.
func TestScenarioTokenContractSkeleton(t *testing.T) {
	src := `合约 我的代币 {
		公开 字符串 名称 = "我的代币";
	}`
	out, err := compiler.Compile(src)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if !strings.HasPrefix(out, "// SPDX-License-Identifier: MIT\npragma solidity ^0.8.0;\n\n") {
		t.Fatalf("missing preamble, got:\n%s", out)
	}
	if !strings.Contains(out, "contract 我的代币 {") {
		t.Fatalf("expected contract named 我的代币, got:\n%s", out)
	}
	if !strings.Contains(out, `string public 名称 = "我的代币";`) {
		t.Fatalf("expected rendered state variable, got:\n%s", out)
	}
}

// Scenario 2: mapping + constructor.
func TestScenarioMappingAndConstructor(t *testing.T) {
	src := `合约 代币 {
		映射(地址 => 整数) 公开 余额;
		构造函数(整数 初始供应量) { 余额[消息发送者] = 初始供应量; }
	}`
	out, err := compiler.Compile(src)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if !strings.Contains(out, "mapping(address => int256) public 余额;") {
		t.Fatalf("expected mapping state variable, got:\n%s", out)
	}
	if !strings.Contains(out, "constructor(int256 初始供应量) { 余额[msg.sender] = 初始供应量; }") {
		t.Fatalf("expected rendered constructor, got:\n%s", out)
	}
}

// Scenario 3: if/return.
func TestScenarioIfReturn(t *testing.T) {
	src := `合约 C {
		函数 转账(地址 账户, 整数 金额) 公开 返回 布尔 {
			如果 (余额[消息发送者] >= 金额) { 返回 真; }
			返回 假;
		}
		映射(地址 => 整数) 余额;
	}`
	out, err := compiler.Compile(src)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if !strings.Contains(out, "if (余额[msg.sender] >= 金额) {\n            return true;\n        }") {
		t.Fatalf("expected rendered if/return, got:\n%s", out)
	}
	if !strings.Contains(out, "return false;") {
		t.Fatalf("expected trailing return false, got:\n%s", out)
	}
}

// Scenario 4: view function.
func TestScenarioViewFunction(t *testing.T) {
	src := `合约 C {
		函数 查询余额(地址 账户) 公开 只读 返回 整数 { 返回 余额[账户]; }
		映射(地址 => 整数) 余额;
	}`
	out, err := compiler.Compile(src)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	want := "function 查询余额(address 账户) public view returns (int256) {\n        return 余额[账户];\n    }"
	if !strings.Contains(out, want) {
		t.Fatalf("expected %q, got:\n%s", want, out)
	}
}

// Scenario 5: precedence.
func TestScenarioPrecedenceNoRedundantParens(t *testing.T) {
	src := `合约 C { 函数 计算() 公开 { 整数 r = a + b * c == d && !e; } }`
	out, err := compiler.Compile(src)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if !strings.Contains(out, "a + b * c == d && !e;") {
		t.Fatalf("expected no redundant parens on natural-precedence expression, got:\n%s", out)
	}
}

func TestScenarioPrecedenceStructure(t *testing.T) {
	program, err := compiler.ASTOf(`合约 C { 函数 计算() 公开 { 整数 r = a + b * c == d && !e; } }`)
	if err != nil {
		t.Fatalf("ASTOf returned error: %v", err)
	}
	decl := program.Contracts[0].Functions[0].Body.Statements[0].(*ast.VarDecl)
	and, ok := decl.Initializer.(*ast.Binary)
	if !ok || and.Operator != ast.OpAnd {
		t.Fatalf("expected top-level &&, got %#v", decl.Initializer)
	}
	eq, ok := and.Left.(*ast.Binary)
	if !ok || eq.Operator != ast.OpEqual {
		t.Fatalf("expected == under &&, got %#v", and.Left)
	}
	add, ok := eq.Left.(*ast.Binary)
	if !ok || add.Operator != ast.OpAdd {
		t.Fatalf("expected + under ==, got %#v", eq.Left)
	}
	mul, ok := add.Right.(*ast.Binary)
	if !ok || mul.Operator != ast.OpMultiply {
		t.Fatalf("expected * as the + node's right operand, got %#v", add.Right)
	}
	if _, ok := and.Right.(*ast.Unary); !ok {
		t.Fatalf("expected ! as the && node's right operand, got %#v", and.Right)
	}
}

// Operator-precedence round-trip property (spec.md invariant 4): emitting
// a parsed expression and re-parsing the emitted form yields an AST equal
// up to parentheses and positions to the original.
func TestPrecedenceRoundTrip(t *testing.T) {
	exprs := []string{
		"a + b * c == d && !e",
		"(a + b) * c",
		"a - (b - c)",
		"a = b + c",
		"a[b] + c.d(e, f)",
		"!(a || b) && c",
	}
	cmpOpts := cmp.Options{
		cmpopts.IgnoreFields(ast.BaseNode{}, "Line", "Column"),
	}
	for _, src := range exprs {
		full := "合约 C { 函数 计算() 公开 { 整数 r = " + src + "; } }"
		first, err := compiler.ASTOf(full)
		if err != nil {
			t.Fatalf("ASTOf(%q) returned error: %v", src, err)
		}
		out, err := compiler.Compile(full)
		if err != nil {
			t.Fatalf("Compile(%q) returned error: %v", src, err)
		}
		emittedExpr := extractEmittedExpr(t, out)
		// None of these fixtures use Chinese keywords/built-ins, so the
		// emitted Solidity expression text is itself valid input to this
		// language's own expression grammar — re-parse it as one, through
		// a freshly built source shell.
		reparsed := "合约 C { 函数 计算() 公开 { 整数 r = " + emittedExpr + "; } }"
		second, err := compiler.ASTOf(reparsed)
		if err != nil {
			t.Fatalf("re-parsing emitted expression %q (from %q) failed: %v", emittedExpr, src, err)
		}
		firstExpr := first.Contracts[0].Functions[0].Body.Statements[0].(*ast.VarDecl).Initializer
		secondExpr := second.Contracts[0].Functions[0].Body.Statements[0].(*ast.VarDecl).Initializer
		if diff := cmp.Diff(firstExpr, secondExpr, cmpOpts); diff != "" {
			t.Fatalf("round-trip mismatch for %q (-original +round-tripped):\n%s", src, diff)
		}
	}
}

// extractEmittedExpr pulls the right-hand side of the single emitted
// "int256 r = <expr>;" statement back out of a full compiled program.
func extractEmittedExpr(t *testing.T, compiled string) string {
	t.Helper()
	const marker = "int256 r = "
	start := strings.Index(compiled, marker)
	if start == -1 {
		t.Fatalf("could not find %q in compiled output:\n%s", marker, compiled)
	}
	start += len(marker)
	end := strings.Index(compiled[start:], ";")
	if end == -1 {
		t.Fatalf("could not find terminating ';' in compiled output:\n%s", compiled)
	}
	return compiled[start : start+end]
}

// Scenario 6: error position.
func TestScenarioErrorPosition(t *testing.T) {
	src := "合约 C {\n    整数 余额\n    整数 其他;\n}"
	_, err := compiler.Compile(src)
	if err == nil {
		t.Fatalf("expected a parse error for the missing semicolon")
	}
	if !strings.Contains(err.Error(), "parse error at 3:") {
		t.Fatalf("expected error positioned at the token following the missing ';', got: %v", err)
	}
}

func TestEmitIsDeterministic(t *testing.T) {
	src := `合约 代币 {
		公开 字符串 名称 = "代币";
		映射(地址 => 整数) 余额;
		构造函数(整数 供应量) { 余额[消息发送者] = 供应量; }
		函数 转账(地址 到, 整数 数量) 公开 返回 布尔 {
			余额[消息发送者] -= 数量;
			余额[到] += 数量;
			返回 真;
		}
	}`
	first, err := compiler.Compile(src)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	second, err := compiler.Compile(src)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if first != second {
		t.Fatalf("expected byte-identical output across repeated calls")
	}
}

func TestBoundaryEmptyContract(t *testing.T) {
	out, err := compiler.Compile("合约 空 { }")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if !strings.Contains(out, "contract 空 {}") {
		t.Fatalf("expected flat empty contract, got:\n%s", out)
	}
}

func TestBoundaryNestedMapping(t *testing.T) {
	out, err := compiler.Compile("合约 C { 映射(地址 => 映射(地址 => 整数)) 授权; }")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if !strings.Contains(out, "mapping(address => mapping(address => int256)) private 授权;") {
		t.Fatalf("expected recursively rendered nested mapping, got:\n%s", out)
	}
}

func TestBoundaryKeywordInsideLongerIdentifier(t *testing.T) {
	tokens, err := compiler.TokensOf("合约 C { 整数 余额X; }")
	if err != nil {
		t.Fatalf("TokensOf returned error: %v", err)
	}
	found := false
	for _, tok := range tokens {
		if tok.Value == "余额X" {
			found = true
		}
		if tok.Value == "余额" {
			t.Fatalf("expected 余额X to lex as one identifier, not a keyword-like prefix plus suffix")
		}
	}
	if !found {
		t.Fatalf("expected a single 余额X identifier token, got %+v", tokens)
	}
}

// ERC20-shaped demo contract from the original tool's own smoke test
// (original_source/compiler.py's __main__ block).
func TestERC20ShapedDemoContract(t *testing.T) {
	src := `合约 我的代币 {
		公开 字符串 名称 = "我的代币";
		公开 整数 总供应量;

		映射(地址 => 整数) 公开 余额;

		构造函数(整数 初始供应量) {
			总供应量 = 初始供应量;
			余额[消息发送者] = 初始供应量;
		}

		函数 转账(地址 接收者, 整数 金额) 公开 返回 布尔 {
			如果 (余额[消息发送者] >= 金额) {
				余额[消息发送者] -= 金额;
				余额[接收者] += 金额;
				返回 真;
			}
			返回 假;
		}
	}`
	out, err := compiler.Compile(src)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	for _, want := range []string{
		"contract 我的代币 {",
		`string public 名称 = "我的代币";`,
		"int256 public 总供应量;",
		"mapping(address => int256) public 余额;",
		"constructor(int256 初始供应量) {",
		"总供应量 = 初始供应量;",
		"余额[msg.sender] = 初始供应量;",
		"function 转账(address 接收者, int256 金额) public returns (bool) {",
		"if (余额[msg.sender] >= 金额) {",
		"余额[msg.sender] -= 金额;",
		"余额[接收者] += 金额;",
		"return true;",
		"return false;",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
