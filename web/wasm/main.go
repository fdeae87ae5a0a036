//go:build js && wasm

// Command wasm exposes the kernel to JavaScript as globalThis.AlgoKernel.
//
// Every call copies its Float64Array arguments into Go memory and returns
// a new Float64Array; host arrays are never written.
package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-kernel/internal/marshal"
	"github.com/cwbudde/algo-kernel/kernel"
)

var funcs []js.Func

func main() {
	api := js.Global().Get("Object").New()

	api.Set("compute_double", export(func(args []js.Value) any {
		v := marshal.FromJS(arg(args, 0))
		kernel.Transform(v, v)
		return marshal.ToJS(v)
	}))

	api.Set("compute_vwap", export(func(args []js.Value) any {
		prices := marshal.FromJS(arg(args, 0))
		vols := marshal.FromJS(arg(args, 1))
		return marshal.ToJS(kernel.ComputeVWAP(prices, vols))
	}))

	api.Set("compute_vwap_checked", export(func(args []js.Value) any {
		prices := marshal.FromJS(arg(args, 0))
		vols := marshal.FromJS(arg(args, 1))

		out := js.Global().Get("Object").New()
		res, err := kernel.WeightedAverage(prices, vols)
		if err != nil {
			out.Set("ok", false)
			out.Set("value", 0)
			out.Set("error", err.Error())
			return out
		}
		out.Set("ok", true)
		out.Set("value", res.Value)
		out.Set("totalWeight", res.TotalWeight)
		out.Set("pairs", res.Pairs)
		out.Set("skipped", res.Skipped)
		return out
	}))

	api.Set("implementation", export(func([]js.Value) any {
		return kernel.Implementation()
	}))

	js.Global().Set("AlgoKernel", api)
	select {}
}

// arg returns args[i], or undefined when the host passed fewer arguments.
func arg(args []js.Value, i int) js.Value {
	if i < len(args) {
		return args[i]
	}
	return js.Undefined()
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
