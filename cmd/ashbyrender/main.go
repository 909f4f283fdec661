// Command ashbyrender renders a material selection chart from a
// property spreadsheet without starting the GUI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"ashby-plotter/internal/material"
	"ashby-plotter/internal/plot"
	"ashby-plotter/internal/unitcell"
)

func main() {
	dataPath := flag.String("data", "", "Path to material property spreadsheet (.xlsx)")
	xProp := flag.String("x", "Density", "Property plotted on the x axis")
	yProp := flag.String("y", "Young Modulus", "Property plotted on the y axis")
	xScale := flag.String("xscale", "log", "X axis scale: log or linear")
	yScale := flag.String("yscale", "log", "Y axis scale: log or linear")
	title := flag.String("title", "", "Chart title")
	style := flag.String("style", "presentation", "Figure style: publication or presentation")
	grid := flag.Bool("grid", true, "Draw grid lines")
	width := flag.Float64("width", 10, "Figure width in inches")
	height := flag.Float64("height", 7.5, "Figure height in inches")
	output := flag.String("o", "ashby_plot.png", "Output file (.png, .pdf, or .svg)")

	markers := flag.Bool("markers", false, "Draw the built-in reference material markers")

	guidePower := flag.Float64("guide-power", 0, "Guideline exponent (0 disables the guideline)")
	guideIntercept := flag.Float64("guide-intercept", 1, "Guideline intercept")
	guideLabel := flag.String("guide-label", "", "Guideline annotation text")

	cellDir := flag.String("cells", "", "Unit cell study directory (enables the overlay)")
	infillName := flag.String("infill", unitcell.NoInfill.Name, "Unit cell infill material")
	flag.Parse()

	if *dataPath == "" && *cellDir == "" {
		fmt.Println("Usage: ashbyrender -data <spreadsheet.xlsx> [-x Density] [-y \"Young Modulus\"] [-o plot.png]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var table *material.Table
	if *dataPath != "" {
		var err error
		table, err = material.Load(*dataPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", *dataPath, err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d materials in %d classes from %s\n",
			table.Len(), len(table.Categories()), *dataPath)
		fmt.Printf("Properties: %s\n", strings.Join(table.Properties(), ", "))
	}

	cfg := plot.DefaultConfig()
	cfg.X.Property = *xProp
	cfg.X.Scale = plot.ParseScale(*xScale)
	cfg.Y.Property = *yProp
	cfg.Y.Scale = plot.ParseScale(*yScale)
	cfg.Title = *title
	cfg.Grid = *grid
	cfg.Width = *width
	cfg.Height = *height

	switch *style {
	case "publication":
		cfg.Style = plot.StylePublication
	case "presentation":
		cfg.Style = plot.StylePresentation
	default:
		fmt.Fprintf(os.Stderr, "Unknown style %q (want publication or presentation)\n", *style)
		os.Exit(1)
	}

	if !*markers {
		cfg.Markers = nil
	}

	g := cfg.PrimaryGuideline()
	g.Enabled = *guidePower != 0
	if g.Enabled {
		g.Power = *guidePower
		g.Intercept = *guideIntercept
		g.Label = *guideLabel
		g.XMin = cfg.X.Min
		g.XMax = cfg.X.Max
	}

	var cells *unitcell.Set
	if *cellDir != "" {
		infill, ok := unitcell.InfillByName(*infillName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown infill %q\n", *infillName)
			os.Exit(1)
		}
		var err error
		cells, err = unitcell.Load(*cellDir, infill)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load unit cell study: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d unit cell samples (infill: %s)\n", cells.Len(), infill.Name)
		cfg.UnitCells.Enabled = true
		cfg.UnitCells.DataDir = *cellDir
		cfg.UnitCells.Infill = infill.Name
	}

	fig, err := plot.Render(table, cells, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Rendering failed: %v\n", err)
		os.Exit(1)
	}

	if err := fig.Export(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *output, err)
		os.Exit(1)
	}

	w, h := fig.Size()
	fmt.Printf("Wrote %s (%.1f x %.1f in)\n", *output, w, h)
}
