package scenes

import (
	"fmt"

	"evalviz/internal/scene"
)

// indent is the per-level code indentation in scene units.
const indent = 1.0

// lineGap is the vertical gap between code lines.
const lineGap = 0.12

// replaceExpr transforms an on-screen expression into new text at the
// same position.
func replaceExpr(sc *scene.Scene, expr *scene.Object, text string) {
	sc.Play(scene.Transform(expr, scene.NewText(text).MoveTo(expr.Pos())))
}

// replaceExprAligned is replaceExpr keeping the given edge fixed instead
// of the center.
func replaceExprAligned(sc *scene.Scene, expr *scene.Object, text string, edge scene.Vec) {
	repl := scene.NewText(text).AlignWith(expr, edge)
	sc.Play(scene.Transform(expr, repl))
}

// SquareOfPred animates the evaluation of a simple OCaml function:
//
//	let square_of_pred x =
//	  let pred_x = x - 1 in
//	  pred_x * pred_x
//
// applied to 5, reducing step by step to 16 through its call context.
type SquareOfPred struct{}

func (SquareOfPred) Name() string { return "SquareOfPred" }

func (SquareOfPred) Description() string {
	return "evaluation of a simple OCaml function through its context"
}

const squareOfPredScale = 0.5

// def builds the renderable function definition, children addressable by
// name down to each occurrence of a variable.
func (SquareOfPred) def() *scene.Object {
	fn := scene.NewText("let square_of_pred x =")

	predLet := scene.NewText("let")
	predLet.NextToAligned(fn, scene.Down, scene.Left, lineGap).Shift(scene.Right.Scale(indent))
	predName := scene.NewText("pred_x =").NextTo(predLet, scene.Right, 0.15)
	predX := scene.NewText("x").NextTo(predName, scene.Right, 0.15)
	predMin := scene.NewText("- 1").NextTo(predX, scene.Right, 0.15)
	predVal := scene.NewGroup(
		predX.WithName("x"),
		predMin.WithName("min"),
	)
	predDef := scene.NewGroup(
		predName.WithName("name"),
		predVal.WithName("val"),
	)
	predEnd := scene.NewText("in").NextTo(predDef, scene.Right, 0.15)
	pred := scene.NewGroup(
		predLet.WithName("let"),
		predDef.WithName("def"),
		predEnd.WithName("end"),
	)

	op1 := scene.NewText("pred_x")
	op1.NextToAligned(pred, scene.Down, scene.Left, lineGap)
	mul := scene.NewText("*").NextTo(op1, scene.Right, 0.15)
	op2 := scene.NewText("pred_x").NextTo(mul, scene.Right, 0.15)
	res := scene.NewGroup(
		op1.WithName("op1"),
		mul.WithName("mul"),
		op2.WithName("op2"),
	)

	return scene.NewGroup(
		fn.WithName("fn"),
		pred.WithName("pred"),
		res.WithName("res"),
	).Center()
}

func (s SquareOfPred) Construct(sc *scene.Scene) {
	defBox := s.constructDefBox(sc)
	s.constructCall(sc, defBox, 5)
	sc.Wait(1)
}

// constructDefBox writes the definition, boxes it, and parks it in the
// upper-left corner.
func (s SquareOfPred) constructDefBox(sc *scene.Scene) *scene.Object {
	def := s.def()
	box := scene.SurroundRect(def, 0.25, scene.White)
	defBox := scene.NewGroup(
		def.WithName("function"),
		box.WithName("box"),
	)
	sc.Add(defBox)

	sc.Play(scene.Write(def))
	sc.Play(scene.ShowCreation(box))
	sc.Play(scene.Animate(defBox, func(o *scene.Object) {
		o.ScaleBy(squareOfPredScale)
		o.ToCorner(scene.UL, 0.4)
	}))
	return defBox
}

// constructCall shows how square_of_pred applied to val is evaluated.
func (s SquareOfPred) constructCall(sc *scene.Scene, defBox *scene.Object, val int) {
	name := scene.NewText("square_of_pred").MoveTo(scene.Left.Scale(3.5))
	arg := scene.NewText(fmt.Sprintf("%d", val)).NextTo(name, scene.Right, 0.15)
	call := scene.NewGroup(
		name.WithName("name"),
		arg.WithName("val"),
	)
	sc.Play(scene.FadeIn(call))

	// Instantiate the definition body (without its header line) next to
	// the call, bracketed by blue lines.
	inst := defBox.Child("function").Clone()
	inst.RemoveNamed("fn")

	end := inst.Clone()
	end.ScaleBy(1 / squareOfPredScale).NextTo(call, scene.Right, 1.0)
	endBounds := end.Bounds()

	callLink := scene.NewLine(
		call.Bounds().Corner(scene.Right).Add(scene.Right.Scale(0.2)),
		scene.Vec{X: endBounds.Min.X - 0.2, Y: endBounds.Center().Y},
	).SetColor(scene.Blue)
	bracket := scene.NewLine(
		scene.Vec{X: endBounds.Min.X - 0.2, Y: endBounds.Min.Y},
		scene.Vec{X: endBounds.Min.X - 0.2, Y: endBounds.Max.Y},
	).SetColor(scene.Blue)
	lines := scene.NewGroup(
		callLink.WithName("link"),
		bracket.WithName("bracket"),
	)

	sc.Play(scene.Indicate(defBox))
	sc.Play(
		scene.Animate(inst, func(o *scene.Object) {
			o.ScaleBy(1 / squareOfPredScale)
			o.NextTo(call, scene.Right, 1.0)
		}),
		scene.ShowCreation(lines),
	)
	sc.Wait(1)

	ctx := NewCallContext(sc, inst)

	// Bind x to the argument, then substitute its occurrence.
	ctx.Add("x", call.Child("val"))
	sc.Wait(1)
	ctx.ReplaceOccurrence(-1, inst.At("pred", "def", "val", "x"))
	sc.Wait(1)

	// Evaluate pred_x and bind it; the local definition line leaves the
	// screen as the binding enters the context.
	predX := val - 1
	replaceExpr(sc, inst.At("pred", "def", "val"), fmt.Sprintf("%d", predX))
	sc.Wait(1)
	ctx.AddWith("pred_x", inst.At("pred", "def", "val"), inst.Child("pred"),
		scene.FadeOutShift(inst.Child("pred"), scene.Up),
		scene.Animate(inst.Child("res"), func(o *scene.Object) {
			o.NextTo(bracket, scene.Right, 0.3)
		}),
	)
	sc.Wait(1)

	// Substitute both occurrences of pred_x, then reduce.
	ctx.ReplaceOccurrence(-1, inst.At("res", "op2"))
	ctx.ReplaceOccurrence(-1, inst.At("res", "op1"))
	sc.Wait(1)
	replaceExprAligned(sc, inst.Child("res"), fmt.Sprintf("%d", predX*predX), scene.Left)

	sc.Wait(1)
	sc.Play(
		scene.FadeOut(ctx.Group()),
		scene.FadeOut(call),
		scene.Animate(inst.Child("res"), func(o *scene.Object) { o.Center() }),
		scene.Uncreate(lines),
	)
}
