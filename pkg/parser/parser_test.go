package parser

import "testing"

func TestParseSimpleContract(t *testing.T) {
	src := `合约 我的代币 { 公开 字符串 名称 = "我的代币"; }`
	program, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program.Contracts) != 1 {
		t.Fatalf("expected 1 contract, got %d", len(program.Contracts))
	}
	contract := program.Contracts[0]
	if contract.Name != "我的代币" {
		t.Errorf("expected contract name 我的代币, got %q", contract.Name)
	}
	if len(contract.StateVariables) != 1 {
		t.Fatalf("expected 1 state variable, got %d", len(contract.StateVariables))
	}
}

func TestParseReturnsParseError(t *testing.T) {
	_, err := Parse(`合约 C { 整数 x }`)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("expected *parser.Error, got %T", err)
	}
}

func TestParseReturnsLexError(t *testing.T) {
	_, err := Parse(`合约 C { 字符串 s = "未结束; }`)
	if err == nil {
		t.Fatal("expected a lex error")
	}
}
