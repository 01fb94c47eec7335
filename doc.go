// Package mvec is a small toolkit of typed numeric buffers and the in-place
// array algorithms built on top of them.
//
// 🚀 What is mvec?
//
//	One resizable container plus a handful of kernels:
//		• buffer: Buffer[T] for any integer or float element, exact growth,
//		  raw-bytes view, memory tracker, advisory lock, text builder
//		• matrix: in-place transpose, dense multiplication, identity fill
//		• curve:  De Casteljau Bezier evaluation and Lerp
//		• diag:   logging facade with warn-and-acknowledge and fatal exit
//
// Under the hood, everything is organized under four subpackages:
//
//	buffer/: Buffer[T], Tracker, Text, Query
//	matrix/: Transpose, Dot, Identity, shape validators
//	curve/:  Bezier, Lerp
//	diag/:   Logger (logrus)
//
// Quick example:
//
//	tr := buffer.NewTracker()
//	m := buffer.FromRaw(tr, []float32{0, 1, 2, 3, 4, 5})
//	_ = matrix.Transpose(m, 2, 3) // m now holds 0 3 1 4 2 5
//	_ = m.Destroy()
//	if err := tr.Checkpoint(); err != nil { … } // leak or double free
//
// See cmd/mvec for a runnable demo and an interactive console.
package mvec
