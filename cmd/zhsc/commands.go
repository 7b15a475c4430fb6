package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zhsc-lang/zhsc/internal/lexer"
	"github.com/zhsc-lang/zhsc/pkg/ast"
	"github.com/zhsc-lang/zhsc/pkg/compiler"
)

var (
	compileOutput string
	showTokens    bool
	showAST       bool
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <input>",
		Short: "Compile a Chinese-keyword contract file to Solidity",
		Long: `Compile reads a .zhs source file, runs it through the lex/parse/emit
pipeline, and writes the resulting Solidity to disk. If -o is omitted, the
output path is derived by swapping the input's extension for ".sol".`,
		Args: cobra.ExactArgs(1),
		RunE: runCompile,
	}
	cmd.Flags().StringVarP(&compileOutput, "output", "o", "", "Output file path (default: derived from input)")
	cmd.Flags().BoolVar(&showTokens, "show-tokens", false, "Print the token stream before compiling")
	cmd.Flags().BoolVar(&showAST, "show-ast", false, "Print the parsed AST before compiling")
	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	log := newLogger()
	inputPath := args[0]

	source, err := readSource(inputPath)
	if err != nil {
		color.Red("✗ %s", err)
		return err
	}
	log.Infow("read source", "path", inputPath, "bytes", len(source))

	if showTokens {
		tokens, err := compiler.TokensOf(source)
		if err != nil {
			color.Red("✗ %s", err)
			return err
		}
		printTokens(tokens)
	}

	if showAST {
		program, err := compiler.ASTOf(source)
		if err != nil {
			color.Red("✗ %s", err)
			return err
		}
		fmt.Println()
		color.Cyan("AST:")
		printAST(program)
	}

	start := time.Now()
	code, err := compiler.Compile(source)
	if err != nil {
		color.Red("✗ compile failed: %s", err)
		return err
	}
	log.Infow("compiled", "elapsed", time.Since(start))

	outPath := compileOutput
	if outPath == "" {
		outPath = outputPathFor(inputPath)
	}
	if err := writeOutput(outPath, code); err != nil {
		color.Red("✗ %s", err)
		return err
	}

	color.Green("✓ compiled successfully")
	fmt.Printf("input:  %s\n", inputPath)
	fmt.Printf("output: %s\n", outPath)
	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <input>",
		Short: "Check a Chinese-keyword contract file for syntax errors without emitting output",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	source, err := readSource(inputPath)
	if err != nil {
		color.Red("✗ %s", err)
		return err
	}
	if _, err := compiler.Compile(source); err != nil {
		color.Red("✗ syntax error: %s", err)
		return err
	}
	color.Green("✓ syntax OK")
	fmt.Printf("file: %s\n", inputPath)
	return nil
}

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Print an example Chinese-keyword ERC20-shaped contract",
		Run: func(cmd *cobra.Command, args []string) {
			color.Cyan("Example: ERC20-shaped token contract")
			fmt.Println()
			fmt.Println(exampleContract)
			fmt.Println()
			color.Yellow("Compile it with:")
			fmt.Println("  zhsc compile token.zhs -o token.sol")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			color.Cyan("zhsc")
			fmt.Printf("version: %s\n", Version)
			fmt.Printf("commit:  %s\n", GitCommit)
			fmt.Printf("built:   %s\n", BuildTime)
		},
	}
}

const exampleContract = `合约 我的代币 {
    公开 字符串 名称 = "我的代币";
    公开 字符串 符号 = "MYT";
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

    函数 查询余额(地址 账户) 公开 只读 返回 整数 {
        返回 余额[账户];
    }
}`

func printTokens(tokens []lexer.Token) {
	fmt.Println()
	color.Cyan("Tokens:")
	limit := len(tokens)
	if limit > 20 {
		limit = 20
	}
	for i := 0; i < limit; i++ {
		t := tokens[i]
		fmt.Printf("  %2d. %-16s %q (%d:%d)\n", i+1, t.Type, t.Value, t.Line, t.Column)
	}
	if len(tokens) > limit {
		fmt.Printf("  ... %d more tokens\n", len(tokens)-limit)
	}
}

// printAST renders a compact indented dump of the parsed program, driven
// by ast.Walk: astDumper tracks its own indentation depth and manually
// re-invokes Walk on each child it wants rendered, returning false so
// Walk's own default recursion never double-visits a subtree.
func printAST(program *ast.Program) {
	var sb strings.Builder
	ast.Walk(program, &astDumper{sb: &sb})
	fmt.Fprint(os.Stdout, sb.String())
}

// astDumper is a Visitor (embeds BaseVisitor for the node kinds it
// doesn't care to customize, namely Parameter).
type astDumper struct {
	ast.BaseVisitor
	sb    *strings.Builder
	depth int
}

func (d *astDumper) pad() string {
	return strings.Repeat("  ", d.depth)
}

// walkChild recurses into a child node at one indentation level deeper.
func (d *astDumper) walkChild(n ast.Node) {
	if n == nil {
		return
	}
	d.depth++
	ast.Walk(n, d)
	d.depth--
}

func (d *astDumper) VisitProgram(n *ast.Program) bool {
	fmt.Fprintf(d.sb, "%sProgram\n", d.pad())
	for _, c := range n.Contracts {
		d.walkChild(c)
	}
	return false
}

func (d *astDumper) VisitContract(n *ast.Contract) bool {
	fmt.Fprintf(d.sb, "%sContract %s\n", d.pad(), n.Name)
	for _, sv := range n.StateVariables {
		d.walkChild(sv)
	}
	for _, ev := range n.Events {
		d.walkChild(ev)
	}
	if n.Constructor != nil {
		d.walkChild(n.Constructor)
	}
	for _, fn := range n.Functions {
		d.walkChild(fn)
	}
	return false
}

func (d *astDumper) VisitStateVariable(n *ast.StateVariable) bool {
	fmt.Fprintf(d.sb, "%sStateVariable %s: %s\n", d.pad(), n.Name, n.Type)
	d.walkChild(n.InitialValue)
	return false
}

func (d *astDumper) VisitEvent(n *ast.Event) bool {
	fmt.Fprintf(d.sb, "%sEvent %s(%s)\n", d.pad(), n.Name, paramSummary(n.Parameters))
	return false
}

func (d *astDumper) VisitConstructor(n *ast.Constructor) bool {
	fmt.Fprintf(d.sb, "%sConstructor(%s)\n", d.pad(), paramSummary(n.Parameters))
	d.walkChild(n.Body)
	return false
}

func (d *astDumper) VisitFunction(n *ast.Function) bool {
	fmt.Fprintf(d.sb, "%sFunction %s(%s) -> %s\n", d.pad(), n.Name, paramSummary(n.Parameters), n.ReturnType)
	d.walkChild(n.Body)
	return false
}

func (d *astDumper) VisitBlock(n *ast.Block) bool {
	fmt.Fprintf(d.sb, "%sBlock\n", d.pad())
	for _, s := range n.Statements {
		d.walkChild(s)
	}
	return false
}

func (d *astDumper) VisitReturnStmt(n *ast.ReturnStmt) bool {
	fmt.Fprintf(d.sb, "%sReturn\n", d.pad())
	d.walkChild(n.Value)
	return false
}

func (d *astDumper) VisitIfStmt(n *ast.IfStmt) bool {
	fmt.Fprintf(d.sb, "%sIf\n", d.pad())
	d.walkChild(n.Cond)
	d.walkChild(n.Then)
	d.walkChild(n.Else)
	return false
}

func (d *astDumper) VisitForStmt(n *ast.ForStmt) bool {
	fmt.Fprintf(d.sb, "%sFor\n", d.pad())
	d.walkChild(n.Init)
	d.walkChild(n.Cond)
	d.walkChild(n.Update)
	d.walkChild(n.Body)
	return false
}

func (d *astDumper) VisitWhileStmt(n *ast.WhileStmt) bool {
	fmt.Fprintf(d.sb, "%sWhile\n", d.pad())
	d.walkChild(n.Cond)
	d.walkChild(n.Body)
	return false
}

func (d *astDumper) VisitExprStmt(n *ast.ExprStmt) bool {
	fmt.Fprintf(d.sb, "%sExprStmt\n", d.pad())
	d.walkChild(n.Expr)
	return false
}

func (d *astDumper) VisitVarDecl(n *ast.VarDecl) bool {
	fmt.Fprintf(d.sb, "%sVarDecl %s: %s\n", d.pad(), n.Name, n.Type)
	d.walkChild(n.Initializer)
	return false
}

func (d *astDumper) VisitAssignment(n *ast.Assignment) bool {
	fmt.Fprintf(d.sb, "%sAssignment %s\n", d.pad(), n.Operator)
	d.walkChild(n.Target)
	d.walkChild(n.Value)
	return false
}

func (d *astDumper) VisitBinary(n *ast.Binary) bool {
	fmt.Fprintf(d.sb, "%sBinary %s\n", d.pad(), n.Operator)
	d.walkChild(n.Left)
	d.walkChild(n.Right)
	return false
}

func (d *astDumper) VisitUnary(n *ast.Unary) bool {
	fmt.Fprintf(d.sb, "%sUnary %s\n", d.pad(), n.Operator)
	d.walkChild(n.Operand)
	return false
}

func (d *astDumper) VisitCall(n *ast.Call) bool {
	fmt.Fprintf(d.sb, "%sCall\n", d.pad())
	d.walkChild(n.Callee)
	for _, a := range n.Args {
		d.walkChild(a)
	}
	return false
}

func (d *astDumper) VisitMember(n *ast.Member) bool {
	fmt.Fprintf(d.sb, "%sMember .%s\n", d.pad(), n.Property)
	d.walkChild(n.Object)
	return false
}

func (d *astDumper) VisitIndex(n *ast.Index) bool {
	fmt.Fprintf(d.sb, "%sIndex\n", d.pad())
	d.walkChild(n.Object)
	d.walkChild(n.Index)
	return false
}

func (d *astDumper) VisitIdentifier(n *ast.Identifier) bool {
	fmt.Fprintf(d.sb, "%sIdentifier %s\n", d.pad(), n.Name)
	return false
}

func (d *astDumper) VisitLiteral(n *ast.Literal) bool {
	fmt.Fprintf(d.sb, "%sLiteral %s\n", d.pad(), n.Value)
	return false
}

func paramSummary(params []*ast.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type + " " + p.Name
	}
	return strings.Join(parts, ", ")
}
