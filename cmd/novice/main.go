package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/pixelclass/novice"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Logging goes to stderr; stdout is for command output
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("novice %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	case "--help", "-h", "help":
		printUsage()
	case "info":
		run(cmdInfo, os.Args[2:], 1)
	case "sample":
		run(cmdSample, os.Args[2:], 3)
	case "fill":
		run(cmdFill, os.Args[2:], 3)
	case "crop":
		run(cmdCrop, os.Args[2:], 6)
	case "resize":
		run(cmdResize, os.Args[2:], 4)
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}

func printUsage() {
	fmt.Println("novice - a beginner-friendly image manipulation tool")
	fmt.Println()
	fmt.Println("Usage: novice <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  info <path>                     Print image format, size, and state")
	fmt.Println("  sample <path> <x> <y>           Print the color at Cartesian (x, y)")
	fmt.Println("  fill <in> <color> <out>         Fill an image with a color and save it")
	fmt.Println("  crop <in> x1 y1 x2 y2 <out>     Save the region [x1:x2, y1:y2]")
	fmt.Println("  resize <in> <w> <h> <out>       Resize an image and save it")
	fmt.Println()
	fmt.Println("Coordinates are Cartesian: (0,0) is the bottom-left pixel.")
	fmt.Println("Colors are (r,g,b) hex strings like '#FF0000' or names like 'red'.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
}

func run(cmd func(args []string) error, args []string, want int) {
	if len(args) != want {
		printUsage()
		os.Exit(2)
	}
	if err := cmd(args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func cmdInfo(args []string) error {
	pic, err := novice.Open(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Format: %s\n", pic.Format())
	fmt.Printf("Path: %s\n", pic.Path())
	fmt.Printf("Size: %dx%d\n", pic.Width(), pic.Height())
	fmt.Printf("Modified: %t\n", pic.Modified())
	return nil
}

func cmdSample(args []string) error {
	pic, err := novice.Open(args[0])
	if err != nil {
		return err
	}
	x, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid x: %q", args[1])
	}
	y, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid y: %q", args[2])
	}
	px, err := pic.Pixel(x, y)
	if err != nil {
		return err
	}
	c := px.RGB()
	fmt.Printf("(%d,%d): %s rgb(%d,%d,%d) ~%s\n",
		x, y, c.Hex(), c.R, c.G, c.B, novice.NearestName(c))
	return nil
}

func cmdFill(args []string) error {
	pic, err := novice.Open(args[0])
	if err != nil {
		return err
	}
	if err := pic.Fill(args[1]); err != nil {
		return err
	}
	return pic.Save(args[2])
}

func cmdCrop(args []string) error {
	pic, err := novice.Open(args[0])
	if err != nil {
		return err
	}
	coords := make([]int, 4)
	for i, arg := range args[1:5] {
		coords[i], err = strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid coordinate: %q", arg)
		}
	}
	region, err := pic.Slice(novice.Range(coords[0], coords[2]), novice.Range(coords[1], coords[3]))
	if err != nil {
		return err
	}
	return region.Save(args[5])
}

func cmdResize(args []string) error {
	pic, err := novice.Open(args[0])
	if err != nil {
		return err
	}
	w, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid width: %q", args[1])
	}
	h, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid height: %q", args[2])
	}
	if err := pic.SetSize(w, h); err != nil {
		return err
	}
	return pic.Save(args[3])
}
