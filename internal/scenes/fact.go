package scenes

import (
	"fmt"
	"strings"

	"evalviz/internal/scene"
)

// Fact animates the evaluation of a recursive OCaml factorial:
//
//	let rec fact n =
//	  if n = 0 then
//	    1
//	  else
//	    n * fact (n - 1)
//
// applied to 3. Each recursive call pushes its own context frame on
// screen, so several contexts are visible at once, and the frames pop
// one by one as the products collapse on the way back up.
type Fact struct{}

func (Fact) Name() string { return "Fact" }

func (Fact) Description() string {
	return "recursive factorial evaluation with stacked call contexts"
}

const factScale = 0.4

// factArg is the argument the walkthrough applies fact to.
const factArg = 3

// def builds the renderable definition, one group per source line.
func (Fact) def() *scene.Object {
	fn := scene.NewText("let rec fact n =")

	ifKw := scene.NewText("if")
	ifKw.NextToAligned(fn, scene.Down, scene.Left, lineGap).Shift(scene.Right.Scale(indent))
	condN := scene.NewText("n").NextTo(ifKw, scene.Right, 0.15)
	condEq := scene.NewText("=").NextTo(condN, scene.Right, 0.15)
	condZero := scene.NewText("0").NextTo(condEq, scene.Right, 0.15)
	cond := scene.NewGroup(
		condN.WithName("n"),
		condEq.WithName("eq"),
		condZero.WithName("zero"),
	)
	thenKw := scene.NewText("then").NextTo(cond, scene.Right, 0.15)
	ifLine := scene.NewGroup(
		ifKw.WithName("if"),
		cond.WithName("cond"),
		thenKw.WithName("then"),
	)

	base := scene.NewText("1")
	base.NextToAligned(ifLine, scene.Down, scene.Left, lineGap).Shift(scene.Right.Scale(indent))

	elseKw := scene.NewText("else")
	elseKw.NextToAligned(base, scene.Down, scene.Left, lineGap).Shift(scene.Left.Scale(indent))

	recN := scene.NewText("n")
	recN.NextToAligned(elseKw, scene.Down, scene.Left, lineGap).Shift(scene.Right.Scale(indent))
	recMul := scene.NewText("*").NextTo(recN, scene.Right, 0.15)
	callName := scene.NewText("fact").NextTo(recMul, scene.Right, 0.15)
	callArg := scene.NewText("(n - 1)").NextTo(callName, scene.Right, 0.15)
	call := scene.NewGroup(
		callName.WithName("name"),
		callArg.WithName("arg"),
	)
	rec := scene.NewGroup(
		recN.WithName("n"),
		recMul.WithName("mul"),
		call.WithName("call"),
	)

	return scene.NewGroup(
		fn.WithName("fn"),
		ifLine.WithName("if"),
		base.WithName("base"),
		elseKw.WithName("else"),
		rec.WithName("rec"),
	).Center()
}

func (f Fact) Construct(sc *scene.Scene) {
	defBox := f.constructDefBox(sc)
	f.constructCall(sc, defBox, factArg)
	sc.Wait(1)
}

func (f Fact) constructDefBox(sc *scene.Scene) *scene.Object {
	def := f.def()
	box := scene.SurroundRect(def, 0.25, scene.White)
	defBox := scene.NewGroup(
		def.WithName("function"),
		box.WithName("box"),
	)
	sc.Add(defBox)

	sc.Play(scene.Write(def))
	sc.Play(scene.ShowCreation(box))
	sc.Play(scene.Animate(defBox, func(o *scene.Object) {
		o.ScaleBy(factScale)
		o.ToCorner(scene.UL, 0.4)
	}))
	return defBox
}

// constructCall unrolls fact n on screen: every recursive call pushes a
// context frame holding its binding of n, the expression grows inward,
// then the stack pops as products collapse back to the result.
func (f Fact) constructCall(sc *scene.Scene, defBox *scene.Object, n int) {
	expr := scene.NewText(fmt.Sprintf("fact %d", n)).MoveTo(scene.Down.Scale(1.5))
	sc.Play(scene.FadeIn(expr))
	sc.Wait(0.5)

	contexts := make([]*CallContext, 0, n+1)

	push := func(k int) {
		sc.Play(scene.Indicate(defBox))
		pos := scene.Vec{X: -4.5 + float64(len(contexts))*2.4, Y: 2.4}
		ctx := NewCallContextAt(sc, pos)
		ctx.AddWith("n", valueText(k, expr), expr)
		contexts = append(contexts, ctx)
		sc.Gauge("contexts", float64(len(contexts)))
	}

	// Wind down: each call with n > 0 takes the else branch and expands
	// into n * fact (n - 1).
	for k := n; k >= 1; k-- {
		push(k)
		replaceExpr(sc, expr, factExpanded(n, n-k+1))
		sc.Wait(0.5)
	}

	// Base case: fact 0 evaluates to 1 and its context pops right away.
	push(0)
	replaceExpr(sc, expr, factBase(n))
	last := len(contexts) - 1
	contexts[last].FadeOut()
	contexts = contexts[:last]
	sc.Gauge("contexts", float64(len(contexts)))
	sc.Wait(0.5)

	// Unwind: collapse the innermost product and pop its context.
	for j := 1; j <= n; j++ {
		replaceExpr(sc, expr, factUnwound(n, j))
		last := len(contexts) - 1
		contexts[last].FadeOut()
		contexts = contexts[:last]
		sc.Gauge("contexts", float64(len(contexts)))
		sc.Wait(0.5)
	}

	sc.Play(scene.Animate(expr, func(o *scene.Object) { o.Center() }))
}

// wrap builds "k * inner", parenthesizing inner products.
func wrap(k int, inner string) string {
	if strings.Contains(inner, "*") {
		return fmt.Sprintf("%d * (%s)", k, inner)
	}
	return fmt.Sprintf("%d * %s", k, inner)
}

// factExpanded is the expression after the first `steps` recursive
// expansions of fact n: factExpanded(3, 2) is "3 * (2 * fact 1)".
func factExpanded(n, steps int) string {
	m := n - steps
	s := fmt.Sprintf("fact %d", m)
	for k := m + 1; k <= n; k++ {
		s = wrap(k, s)
	}
	return s
}

// factBase is the fully expanded expression with fact 0 reduced to 1.
func factBase(n int) string {
	s := "1"
	for k := 1; k <= n; k++ {
		s = wrap(k, s)
	}
	return s
}

// factUnwound is the expression after the j innermost calls returned:
// factUnwound(3, 2) is "3 * 2".
func factUnwound(n, j int) string {
	s := fmt.Sprintf("%d", factorial(j))
	for k := j + 1; k <= n; k++ {
		s = wrap(k, s)
	}
	return s
}

func factorial(n int) int {
	r := 1
	for k := 2; k <= n; k++ {
		r *= k
	}
	return r
}
