//go:build js && wasm

// Command paintwasm mounts the paint widget into a web page.
//
//	GOOS=js GOARCH=wasm go build -o paint.wasm ./cmd/paintwasm
package main

import (
	"log"
	"strconv"
	"syscall/js"

	"MyLocalPaint/internal/paint"
	"MyLocalPaint/internal/surface"
)

func main() {
	doc := js.Global().Get("document")
	win := js.Global().Get("window")

	viewport := paint.Size{
		Width:  win.Get("innerWidth").Int(),
		Height: win.Get("innerHeight").Int(),
	}
	size := paint.SurfaceSize(viewport)

	container := doc.Call("createElement", "div")
	el := doc.Call("createElement", "canvas")
	el.Set("width", size.Width)
	el.Set("height", size.Height)
	container.Call("appendChild", el)

	canvas := surface.NewCanvas(el)
	ctrl := paint.NewController(canvas, paint.WithLocator(canvas), paint.WithLogger(log.Default()))

	controls := doc.Call("createElement", "div")
	colorInput := doc.Call("createElement", "input")
	colorInput.Set("type", "color")
	colorInput.Set("value", ctrl.Style().Color)
	widthInput := doc.Call("createElement", "input")
	widthInput.Set("type", "range")
	widthInput.Set("min", paint.MinWidth)
	widthInput.Set("max", paint.MaxWidth)
	widthInput.Set("value", ctrl.Style().Width)
	controls.Call("appendChild", colorInput)
	controls.Call("appendChild", widthInput)
	container.Call("appendChild", controls)
	doc.Get("body").Call("appendChild", container)

	// Callbacks stay registered for the page's lifetime, so they are never
	// released.
	on := func(target js.Value, name string, fn func(ev js.Value)) {
		target.Call("addEventListener", name, js.FuncOf(func(this js.Value, args []js.Value) any {
			fn(args[0])
			return nil
		}))
	}
	pointer := func(kind paint.EventKind) func(js.Value) {
		return func(ev js.Value) {
			ctrl.Dispatch(paint.Event{
				Kind: kind,
				X:    ev.Get("offsetX").Float(),
				Y:    ev.Get("offsetY").Float(),
			})
		}
	}
	touch := func(kind paint.EventKind) func(js.Value) {
		return func(ev js.Value) {
			ev.Call("preventDefault")
			ctrl.Dispatch(paint.Event{Kind: kind, Touches: touches(ev.Get("touches"))})
		}
	}

	on(el, "mousedown", pointer(paint.PointerDown))
	on(el, "mousemove", pointer(paint.PointerMove))
	on(el, "mouseup", pointer(paint.PointerUp))
	on(el, "mouseleave", pointer(paint.PointerLeave))
	on(el, "touchstart", touch(paint.TouchStart))
	on(el, "touchmove", touch(paint.TouchMove))
	on(el, "touchend", touch(paint.TouchEnd))
	on(el, "touchcancel", touch(paint.TouchCancel))

	on(colorInput, "input", func(js.Value) {
		if err := ctrl.SetColor(colorInput.Get("value").String()); err != nil {
			log.Printf("paint: %v", err)
		}
	})
	on(widthInput, "input", func(js.Value) {
		n, err := strconv.Atoi(widthInput.Get("value").String())
		if err != nil {
			log.Printf("paint: width %v", err)
			return
		}
		ctrl.SetWidth(n)
	})

	log.Printf("paint: mounted %dx%d surface", size.Width, size.Height)
	select {}
}

// touches copies the first touch of a TouchList; the rest are ignored.
func touches(list js.Value) []paint.Touch {
	if list.IsUndefined() || list.Get("length").Int() == 0 {
		return nil
	}
	t := list.Index(0)
	return []paint.Touch{{
		ClientX: t.Get("clientX").Float(),
		ClientY: t.Get("clientY").Float(),
	}}
}
