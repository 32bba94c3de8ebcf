package render

import (
	"math"

	"github.com/helixml/led-coordinator/internal/panel"
)

// Symbol is the closed set of named static scenes (§3).
type Symbol string

const (
	SymbolWifi       Symbol = "wifi"
	SymbolWifiError  Symbol = "wifi_error"
	SymbolTunnel     Symbol = "tunnel"
	SymbolDiscord    Symbol = "discord"
	SymbolCheck      Symbol = "check"
	SymbolError      Symbol = "error"
	SymbolHourglass  Symbol = "hourglass"
	SymbolDot        Symbol = "dot"
	SymbolAllOn      Symbol = "all_on"
	SymbolConnected  Symbol = "connected"
)

// ValidSymbols enumerates the full closed set, for client/server-side validation.
var ValidSymbols = map[Symbol]bool{
	SymbolWifi: true, SymbolWifiError: true, SymbolTunnel: true, SymbolDiscord: true,
	SymbolCheck: true, SymbolError: true, SymbolHourglass: true, SymbolDot: true,
	SymbolAllOn: true, SymbolConnected: true,
}

// RenderSymbol dispatches to the named symbol's pure renderer (§4.2). An unknown
// symbol renders an empty (all-black) framebuffer; callers are expected to validate
// against ValidSymbols before reaching here.
func RenderSymbol(s Symbol) *panel.Framebuffer {
	fb := panel.NewFramebuffer()
	switch s {
	case SymbolWifi:
		drawWifiArcs(fb, 3, WifiGreen)
	case SymbolWifiError:
		drawWifiArcs(fb, 3, WifiErrorRed)
		DrawLine(fb, 16, 16, 48, 48, WifiErrorRed)
	case SymbolTunnel:
		drawTunnel(fb)
	case SymbolDiscord:
		drawDiscord(fb)
	case SymbolCheck:
		DrawCheckmarkCentered(fb, panel.Width/2, panel.Height/2)
	case SymbolError:
		drawError(fb)
	case SymbolHourglass:
		drawHourglass(fb)
	case SymbolDot:
		FillCircle(fb, panel.Width/2, panel.Height/2, 4, TextWhite)
	case SymbolAllOn:
		fillAll(fb, AllOnWhite)
	case SymbolConnected:
		drawConnected(fb)
	}
	return fb
}

func fillAll(fb *panel.Framebuffer, c panel.Color) {
	for y := 0; y < panel.Height; y++ {
		for x := 0; x < panel.Width; x++ {
			fb.Set(x, y, c)
		}
	}
}

// drawWifiArcs draws up to three concentric 140-degree arcs above a center dot, the
// shape the wifi/wifi_searching animation frames also build on.
func drawWifiArcs(fb *panel.Framebuffer, arcs int, c panel.Color) {
	cx, cy := panel.Width/2, panel.Height-16
	FillCircle(fb, cx, cy, 2, c)
	for i := 1; i <= arcs; i++ {
		radius := i * 8
		for angle := 200; angle <= 340; angle += 4 {
			x := cx + radius*cos(angle)/100
			y := cy + radius*sin(angle)/100
			fb.Set(x, y, c)
		}
	}
}

func drawTunnel(fb *panel.Framebuffer) {
	cx, cy := panel.Width/2, panel.Height/2
	for i, depth := range []int{28, 18, 8} {
		DrawLine(fb, cx-depth, cy-depth/2+i, cx, cy, TunnelBlue)
		DrawLine(fb, cx+depth, cy-depth/2+i, cx, cy, TunnelBlue)
	}
}

func drawDiscord(fb *panel.Framebuffer) {
	DrawOutlineRect(fb, Range{Lo: 16, Hi: 48}, Range{Lo: 20, Hi: 44}, DiscordPurple)
	FillCircle(fb, 24, 32, 3, DiscordPurple)
	FillCircle(fb, 40, 32, 3, DiscordPurple)
}

func drawError(fb *panel.Framebuffer) {
	DrawLine(fb, 20, 20, 44, 44, WifiErrorRed)
	DrawLine(fb, 44, 20, 20, 44, WifiErrorRed)
}

func drawHourglass(fb *panel.Framebuffer) {
	top := Range{Lo: 24, Hi: 40}
	for y := 16; y < 32; y++ {
		width := (y - 16) * (top.len()) / 16
		inset := (top.len() - width) / 2
		for x := top.Lo + inset; x < top.Hi-inset; x++ {
			fb.Set(x, y, HourglassYellow)
		}
	}
	for y := 32; y < 48; y++ {
		width := (48 - y) * (top.len()) / 16
		inset := (top.len() - width) / 2
		for x := top.Lo + inset; x < top.Hi-inset; x++ {
			fb.Set(x, y, HourglassYellow)
		}
	}
}

func drawConnected(fb *panel.Framebuffer) {
	DrawTextCentered(fb, "CONNECTED", panel.Width/2, 20, TextWhite)
	DrawCheckmarkCentered(fb, panel.Width/2, 40)
}

// cos/sin are small fixed-point (x100) helpers so symbol geometry stays integer-only,
// matching the Renderer's pure-function, no-float contract for pixel placement.
func cos(deg int) int { return int(100 * cosTable[((deg%360)+360)%360]) }
func sin(deg int) int { return int(100 * sinTable[((deg%360)+360)%360]) }

var cosTable, sinTable = buildTrigTables()

func buildTrigTables() ([360]float64, [360]float64) {
	var c, s [360]float64
	for d := 0; d < 360; d++ {
		rad := float64(d) * math.Pi / 180
		c[d] = math.Cos(rad)
		s[d] = math.Sin(rad)
	}
	return c, s
}
