// Command sginfo prints Savitzky-Golay kernel coefficients and response
// properties for a filter configuration.
//
// Usage:
//
//	sginfo [flags]
//
// Examples:
//
//	sginfo -n 4 -p 2
//	sginfo -n 4 -p 3 -d 1 -dt 0.01
//	sginfo -n 2 -p 2 -edges
//	sginfo -n 4 -p 2 -response 64
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	savgol "github.com/cwbudde/algo-savgol"
)

func main() {
	nFlag := flag.Int("n", 4, "half-window size (window spans 2n+1 samples)")
	pFlag := flag.Int("p", 2, "polynomial order")
	dFlag := flag.Int("d", 0, "derivative order")
	dtFlag := flag.Float64("dt", 1, "sample spacing")
	targetFlag := flag.Int("target", -1, "target offset within the window (-1 = centered)")
	edges := flag.Bool("edges", false, "print the full per-offset kernel table")
	response := flag.Int("response", 0, "print an N-point magnitude spectrum of the centered kernel")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sginfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints Savitzky-Golay kernel coefficients and response properties.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sginfo -n 4 -p 2\n")
		fmt.Fprintf(os.Stderr, "  sginfo -n 4 -p 3 -d 1 -dt 0.01\n")
		fmt.Fprintf(os.Stderr, "  sginfo -n 2 -p 2 -edges\n")
	}
	flag.Parse()

	n, p, d, dt := *nFlag, *pFlag, *dFlag, *dtFlag
	target := *targetFlag
	if target < 0 {
		target = n
	}

	fmt.Printf("half-window %d, window %d, order %d, derivative %d, dt %g\n\n", n, 2*n+1, p, d, dt)

	if *edges {
		printTable(n, p, d, dt)
	} else {
		kernel, err := savgol.Design(n, p, d, dt, target)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		printKernel(kernel, target)
	}

	if *response > 0 {
		printResponse(n, p, d, dt, *response)
	}
}

func printKernel(kernel []float64, target int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "offset\tcoefficient\t\n")
	for i, c := range kernel {
		mark := ""
		if i == target {
			mark = " *"
		}
		fmt.Fprintf(tw, "%d\t%+.10f%s\t\n", i, c, mark)
	}
	tw.Flush()

	sum := 0.0
	for _, c := range kernel {
		sum += c
	}
	fmt.Printf("\nsum %+.6e\n", sum)
}

func printTable(n, p, d int, dt float64) {
	w := 2*n + 1
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "target\t")
	for i := range w {
		fmt.Fprintf(tw, "k[%d]\t", i)
	}
	fmt.Fprintln(tw)
	for t := range w {
		kernel, err := savgol.Design(n, p, d, dt, t)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(tw, "%d\t", t)
		for _, c := range kernel {
			fmt.Fprintf(tw, "%+.6f\t", c)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func printResponse(n, p, d int, dt float64, size int) {
	kernel, err := savgol.Design(n, p, d, dt, n)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mag, err := savgol.MagnitudeSpectrum(kernel, size)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "bin\tfreq\t|H|\t\n")
	for i, m := range mag {
		freq := float64(i) / float64(size)
		fmt.Fprintf(tw, "%d\t%.4f\t%.6f\t\n", i, freq, m)
	}
	tw.Flush()
}
