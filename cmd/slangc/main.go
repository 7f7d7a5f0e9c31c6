package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"slang"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "build":
		return buildCommand(args[2:])
	case "run":
		return runCommand(args[2:])
	case "repl":
		return replCommand()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func buildCommand(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	output := fs.String("o", "", "output Python file (default: source with .py extension)")
	showTokens := fs.Bool("tokens", false, "print the token sequence and exit")
	showAST := fs.Bool("ast", false, "print the AST and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("slangc build: source path required")
	}
	sourcePath := fs.Arg(0)

	source, err := readSource(sourcePath)
	if err != nil {
		return err
	}

	if *showTokens {
		tokens, err := slang.Tokenize(source)
		if err != nil {
			return diagnose(source, err)
		}
		fmt.Print(slang.DumpTokens(tokens))
		return nil
	}

	if *showAST {
		tokens, err := slang.Tokenize(source)
		if err != nil {
			return diagnose(source, err)
		}
		program, err := slang.Parse(tokens)
		if err != nil {
			return diagnose(source, err)
		}
		fmt.Print(slang.DumpAST(program))
		return nil
	}

	python, err := slang.Compile(source)
	if err != nil {
		return diagnose(source, err)
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = outputPathFor(sourcePath)
	}
	if err := os.WriteFile(outputPath, []byte(python+"\n"), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Compiled %s -> %s\n", sourcePath, outputPath)
	return nil
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("slangc run: source path required")
	}
	sourcePath := fs.Arg(0)

	source, err := readSource(sourcePath)
	if err != nil {
		return err
	}
	python, err := slang.Compile(source)
	if err != nil {
		return diagnose(source, err)
	}

	interpreter, err := exec.LookPath("python3")
	if err != nil {
		return errors.New("slangc run: python3 not found on PATH")
	}

	tmp, err := os.CreateTemp("", "slangc-*.py")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(python + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	cmd := exec.Command(interpreter, tmp.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

func outputPathFor(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	return strings.TrimSuffix(sourcePath, ext) + ".py"
}

// diagnose appends the code frame for errors that carry a position.
func diagnose(source string, err error) error {
	pos, ok := errorPosition(err)
	if !ok {
		return err
	}
	frame := slang.CodeFrame(source, pos)
	if frame == "" {
		return err
	}
	return fmt.Errorf("%s\n%s", err.Error(), frame)
}

func errorPosition(err error) (slang.Position, bool) {
	var lexErr *slang.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Pos, true
	}
	var synErr *slang.SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Pos, true
	}
	var semErr *slang.SemanticError
	if errors.As(err, &semErr) {
		return semErr.Pos, true
	}
	return slang.Position{}, false
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  build [-o out.py] [-tokens] [-ast] <file.sl>")
	fmt.Fprintln(os.Stderr, "    compile a SimpleLang file to Python")
	fmt.Fprintln(os.Stderr, "  run <file.sl>")
	fmt.Fprintln(os.Stderr, "    compile and execute via python3")
	fmt.Fprintln(os.Stderr, "  repl")
	fmt.Fprintln(os.Stderr, "    interactive compile explorer")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
