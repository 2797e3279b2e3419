package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/conf"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"

	"github.com/Shu-ler/SpreadSheet/contracts"
)

// FormulaParser turns expression text (the part after '=') into
// evaluable formulas. Expressions are parsed with the expr parser,
// validated against the cell grammar, re-printed canonically and
// compiled once; evaluation reuses pooled VMs.
type FormulaParser struct {
	compilerOptions []expr.Option
	vmPool          sync.Pool
}

func NewFormulaParser() *FormulaParser {
	return &FormulaParser{
		compilerOptions: []expr.Option{
			expr.Env(map[string]any{}),
			expr.AllowUndefinedVariables(),
			expr.Optimize(false),
			expr.DisableAllBuiltins(),
			minFunction,
			maxFunction,
			sumFunction,
			avgFunction,
		},

		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

func (p *FormulaParser) Parse(expression string) (contracts.Formula, error) {
	parserConfig := conf.CreateNew()
	for _, option := range p.compilerOptions {
		option(parserConfig)
	}

	tree, err := parser.ParseWithConfig(expression, parserConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expression, contracts.FormulaSyntaxError)
	}

	references, err := collectCellReferences(tree.Node)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expression, err)
	}

	canonical := printFormulaNode(tree.Node)

	program, err := expr.Compile(canonical, p.compilerOptions...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", expression, contracts.FormulaSyntaxError)
	}

	return &Formula{
		program:    program,
		expression: canonical,
		references: references,
		vmPool:     &p.vmPool,
	}, nil
}

// Formula is one compiled expression plus the references it reads.
type Formula struct {
	program    *vm.Program
	expression string
	references []contracts.Position
	vmPool     *sync.Pool
}

func (f *Formula) Expression() string {
	return f.expression
}

func (f *Formula) References() []contracts.Position {
	references := make([]contracts.Position, len(f.references))
	copy(references, f.references)
	return references
}

// Evaluate resolves every reference to a number, runs the program and
// wraps the outcome. Errors come back in-band: an undecodable
// reference is #REF!, an unparseable referenced string is #VALUE!,
// a referenced error propagates, and anything non-finite is #ARITHM!.
func (f *Formula) Evaluate(getter contracts.CellValuesGetter) contracts.Value {
	if getter == nil {
		getter = func(contracts.Position) *contracts.Value { return nil }
	}

	vars := make(map[string]any, len(f.references))
	for _, ref := range f.references {
		if !ref.IsValid() {
			return contracts.NewErrorValue(contracts.FormulaErrorRef)
		}

		name := ref.String()
		if _, ok := vars[name]; ok {
			continue
		}

		number, errValue := referencedValueToNumber(getter(ref))
		if errValue != nil {
			return *errValue
		}
		vars[name] = number
	}

	machine := f.vmPool.Get().(*vm.VM)
	output, err := machine.Run(f.program, vars)
	f.vmPool.Put(machine)
	if err != nil {
		return contracts.NewErrorValue(contracts.FormulaErrorArithmetic)
	}

	number, ok := outputToNumber(output)
	if !ok || math.IsNaN(number) || math.IsInf(number, 0) {
		return contracts.NewErrorValue(contracts.FormulaErrorArithmetic)
	}
	return contracts.NewNumberValue(number)
}

// referencedValueToNumber applies the coercion contract for a
// referenced cell: missing and empty cells count as 0, numbers pass
// through, strings must parse as finite doubles modulo trailing
// whitespace, and error values propagate unchanged.
func referencedValueToNumber(value *contracts.Value) (float64, *contracts.Value) {
	if value == nil {
		return 0, nil
	}

	switch value.Kind {
	case contracts.NumberValueKind:
		return value.Number, nil

	case contracts.ErrorValueKind:
		return 0, value

	default:
		text := strings.TrimRight(value.Text, " \t\n\v\f\r")
		if text == "" {
			return 0, nil
		}

		number, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
			errValue := contracts.NewErrorValue(contracts.FormulaErrorValue)
			return 0, &errValue
		}
		return number, nil
	}
}

func outputToNumber(output any) (float64, bool) {
	switch number := output.(type) {
	case int:
		return float64(number), true
	case int64:
		return float64(number), true
	case float64:
		return number, true
	default:
		return 0, false
	}
}

/*
 * Grammar validation and reference collection
 */

var cellReferencePattern = regexp.MustCompile(`^[A-Z]+[0-9]+$`)

// collectCellReferences validates the tree against the cell grammar
// (literals, references, unary and binary arithmetic, math function
// calls) and collects references in source order. Lexically
// cell-shaped but undecodable references become None sentinels.
func collectCellReferences(node ast.Node) ([]contracts.Position, error) {
	references := make([]contracts.Position, 0, 4)
	if err := walkFormulaNode(node, &references); err != nil {
		return nil, err
	}
	return references, nil
}

func walkFormulaNode(node ast.Node, references *[]contracts.Position) error {
	switch n := node.(type) {
	case *ast.IntegerNode, *ast.FloatNode:
		return nil

	case *ast.IdentifierNode:
		if !cellReferencePattern.MatchString(n.Value) {
			return fmt.Errorf("unknown identifier %q: %w", n.Value, contracts.FormulaSyntaxError)
		}
		*references = append(*references, contracts.PositionFromString(n.Value))
		return nil

	case *ast.UnaryNode:
		if n.Operator != "+" && n.Operator != "-" {
			return fmt.Errorf("unsupported operator %q: %w", n.Operator, contracts.FormulaSyntaxError)
		}
		return walkFormulaNode(n.Node, references)

	case *ast.BinaryNode:
		switch n.Operator {
		case "+", "-", "*", "/":
		default:
			return fmt.Errorf("unsupported operator %q: %w", n.Operator, contracts.FormulaSyntaxError)
		}

		if err := walkFormulaNode(n.Left, references); err != nil {
			return err
		}
		return walkFormulaNode(n.Right, references)

	case *ast.CallNode:
		callee, ok := n.Callee.(*ast.IdentifierNode)
		if !ok || !isMathFunction(callee.Value) {
			return fmt.Errorf("unknown function call: %w", contracts.FormulaSyntaxError)
		}
		if len(n.Arguments) == 0 {
			return fmt.Errorf("%s requires at least one argument: %w", callee.Value, contracts.FormulaSyntaxError)
		}

		for _, argument := range n.Arguments {
			if err := walkFormulaNode(argument, references); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unsupported expression node: %w", contracts.FormulaSyntaxError)
	}
}

/*
 * Canonical reprint
 */

const (
	precedenceAdditive = iota + 1
	precedenceMultiplicative
	precedenceUnary
	precedenceAtom
)

func nodePrecedence(node ast.Node) int {
	switch n := node.(type) {
	case *ast.BinaryNode:
		if n.Operator == "*" || n.Operator == "/" {
			return precedenceMultiplicative
		}
		return precedenceAdditive
	case *ast.UnaryNode:
		return precedenceUnary
	default:
		return precedenceAtom
	}
}

// printFormulaNode renders the compact canonical form: no spaces and
// the minimal parentheses that survive a re-parse unchanged.
func printFormulaNode(node ast.Node) string {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return strconv.Itoa(n.Value)

	case *ast.FloatNode:
		return strconv.FormatFloat(n.Value, 'g', -1, 64)

	case *ast.IdentifierNode:
		return n.Value

	case *ast.UnaryNode:
		operand := printFormulaNode(n.Node)
		if nodePrecedence(n.Node) < precedenceUnary {
			operand = "(" + operand + ")"
		}
		return n.Operator + operand

	case *ast.BinaryNode:
		precedence := nodePrecedence(n)

		left := printFormulaNode(n.Left)
		if nodePrecedence(n.Left) < precedence {
			left = "(" + left + ")"
		}

		right := printFormulaNode(n.Right)
		rightPrecedence := nodePrecedence(n.Right)
		if rightPrecedence < precedence ||
			(rightPrecedence == precedence && (n.Operator == "-" || n.Operator == "/")) {
			right = "(" + right + ")"
		}

		return left + n.Operator + right

	case *ast.CallNode:
		arguments := make([]string, len(n.Arguments))
		for i, argument := range n.Arguments {
			arguments[i] = printFormulaNode(argument)
		}
		return printFormulaNode(n.Callee) + "(" + strings.Join(arguments, ",") + ")"

	default:
		return ""
	}
}
