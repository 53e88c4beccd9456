//go:build ignore

// build.go - dataguide build system
// Usage: go run build.go [-target=TARGET] [-v]
// Targets: all, <program>, test, clean

package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
)

const module = "dataguide"

var (
	distDir = "dist"

	// Programs under cmd/
	programs = []string{
		"arraybasics",
		"tablebasics",
		"charts",
		"salesreport",
		"studentreport",
		"datagen",
		"reportserver",
	}

	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
	colorCyan  = "\033[36m"
)

func main() {
	target := flag.String("target", "all", "Build target")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	printHeader()
	startTime := time.Now()

	switch *target {
	case "all":
		buildAll(*verbose)
	case "test":
		runTests(*verbose)
	case "clean":
		clean(*verbose)
	default:
		if !isProgram(*target) {
			showHelp()
			os.Exit(1)
		}
		buildProgram(*target, *verbose)
	}

	printSuccess(fmt.Sprintf("Build completed in %s", time.Since(startTime).Round(time.Millisecond)))
}

func printHeader() {
	fmt.Println(colorCyan + "===========================================" + colorReset)
	fmt.Println(colorCyan + "        dataguide - Build System" + colorReset)
	fmt.Println(colorCyan + "===========================================" + colorReset)
	fmt.Println()
}

func printInfo(msg string) {
	fmt.Printf("%s[INFO]%s %s\n", colorBlue, colorReset, msg)
}

func printSuccess(msg string) {
	fmt.Printf("%s[SUCCESS]%s %s\n", colorGreen, colorReset, msg)
}

func printError(msg string) {
	fmt.Printf("%s[ERROR]%s %s\n", colorRed, colorReset, msg)
}

func isProgram(name string) bool {
	for _, p := range programs {
		if p == name {
			return true
		}
	}
	return false
}

func buildAll(verbose bool) {
	printInfo("Building all programs...")

	if err := os.MkdirAll(distDir, 0755); err != nil {
		printError(fmt.Sprintf("Failed to create %s: %v", distDir, err))
		os.Exit(1)
	}
	for _, name := range programs {
		buildProgram(name, verbose)
	}

	printSuccess("All programs built successfully!")
}

func buildProgram(name string, verbose bool) {
	printInfo(fmt.Sprintf("Building %s...", name))

	exeName := name
	if runtime.GOOS == "windows" {
		exeName += ".exe"
	}
	outputPath := filepath.Join(distDir, exeName)

	ldflags := fmt.Sprintf("-s -w -X %s/pkg/contracts.BuildTime=%s -X %s/pkg/contracts.GitCommit=%s",
		module, time.Now().UTC().Format(time.RFC3339), module, gitCommit())

	args := []string{"build"}
	if verbose {
		args = append(args, "-v")
	}
	args = append(args, "-ldflags", ldflags, "-o", outputPath, "./cmd/"+name)

	cmd := exec.Command("go", args...)
	if verbose {
		fmt.Printf("Running: go %s\n", strings.Join(args, " "))
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		printError(fmt.Sprintf("Failed to build %s: %v", name, err))
		os.Exit(1)
	}

	if info, err := os.Stat(outputPath); err == nil {
		sizeMB := float64(info.Size()) / 1024 / 1024
		printSuccess(fmt.Sprintf("Built %s (%.1f MB)", exeName, sizeMB))
	}
}

func gitCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

func runTests(verbose bool) {
	printInfo("Running tests...")

	args := []string{"test", "./..."}
	if verbose {
		args = append(args, "-v")
	}
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		printError("Tests failed")
		os.Exit(1)
	}
	printSuccess("All tests passed!")
}

func clean(verbose bool) {
	printInfo("Cleaning build artifacts...")

	if err := os.RemoveAll(distDir); err != nil {
		printError(fmt.Sprintf("Failed to remove %s: %v", distDir, err))
		os.Exit(1)
	}
	if verbose {
		fmt.Printf("Removed %s\n", distDir)
	}
}

func showHelp() {
	sorted := append([]string(nil), programs...)
	sort.Strings(sorted)

	fmt.Println("Usage: go run build.go [-target=TARGET] [-v]")
	fmt.Println()
	fmt.Println("Targets:")
	fmt.Println("  all      Build every program into dist/")
	fmt.Println("  test     Run all tests")
	fmt.Println("  clean    Remove dist/")
	for _, p := range sorted {
		fmt.Printf("  %-8s Build only %s\n", p, p)
	}
}
