// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemahtml

// schemahtml renders HTML documentation fragments from endpoint schemas.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/schemahtml"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/schemahtml"
	_buildTime string
)

// cliOptions describes schemahtml CLI flags and subcommands.
type cliOptions struct {
	Version         versionCommand         `command:"version" description:"Print version information"`
	SchemaToHTML    schemaToHTMLCommand    `command:"schema2html" description:"Render schema definition as HTML fragment"`
	ExamplesToHTML  examplesToHTMLCommand  `command:"examples2html" description:"Render example payload list as HTML fragment"`
	EndpointsToHTML endpointsToHTMLCommand `command:"endpoint2html" description:"Render endpoint definition files as HTML fragments"`
}

// ioArgs groups optional input/output positional arguments.
type ioArgs struct {
	Input  string `positional-arg-name:"input" description:"Input file path (optional; stdin when omitted)"`
	Output string `positional-arg-name:"output" description:"Output HTML file path (optional; stdout when omitted)"`
}

// schemaToHTMLCommand converts schema YAML/JSON to HTML.
type schemaToHTMLCommand struct {
	runner *cliRunner
	Args   ioArgs `positional-args:"yes"`
}

// Execute runs schema2html subcommand.
func (command *schemaToHTMLCommand) Execute(_ []string) error {
	return command.runner.runSchemaToHTML(command.Args.Input, command.Args.Output)
}

// examplesToHTMLCommand converts example list YAML/JSON to HTML.
type examplesToHTMLCommand struct {
	runner *cliRunner
	Args   ioArgs `positional-args:"yes"`
}

// Execute runs examples2html subcommand.
func (command *examplesToHTMLCommand) Execute(_ []string) error {
	return command.runner.runExamplesToHTML(command.Args.Input, command.Args.Output)
}

// endpointRenderFlags groups endpoint rendering flags.
type endpointRenderFlags struct {
	OutputDir string `short:"o" long:"output-dir" description:"Write one .html file per endpoint into directory (stdout when omitted)"`
	Jobs      int    `short:"j" long:"jobs" description:"Number of endpoint files rendered in parallel (0 uses CPU count)" default:"0"`
}

// endpointsToHTMLCommand renders endpoint definition files.
type endpointsToHTMLCommand struct {
	runner *cliRunner
	Args   struct {
		Files []string `positional-arg-name:"file" description:"Endpoint definition files (YAML or JSON)" required:"1"`
	} `positional-args:"yes"`

	RenderFlags endpointRenderFlags `group:"Endpoint Render"`
}

// Execute runs endpoint2html subcommand.
func (command *endpointsToHTMLCommand) Execute(_ []string) error {
	return command.runner.runEndpointsToHTML(command.Args.Files, command.RenderFlags.OutputDir, command.RenderFlags.Jobs)
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	renderer    *schemahtml.Renderer
	programName string
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "schemahtml"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		renderer:    schemahtml.NewRenderer(schemahtml.NewMarkdown()),
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runSchemaToHTML renders schema from file or stdin and writes HTML to stdout or file.
func (runner *cliRunner) runSchemaToHTML(inputPath, outputPath string) error {
	data, err := runner.readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read schema input: %w", err)
	}

	schema, err := schemahtml.ParseSchema(data)
	if err != nil {
		return err
	}

	fragment, err := runner.renderer.HTMLForSchema(schema)
	if err != nil {
		return fmt.Errorf("render schema html: %w", err)
	}

	return runner.writeOutput(outputPath, fragment)
}

// runExamplesToHTML renders example list from file or stdin and writes HTML to stdout or file.
func (runner *cliRunner) runExamplesToHTML(inputPath, outputPath string) error {
	data, err := runner.readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read examples input: %w", err)
	}

	examples, err := schemahtml.ParseExamples(data)
	if err != nil {
		return err
	}

	if len(examples) == 0 {
		_, _ = fmt.Fprintln(runner.stderr, "warning: example list is empty; nothing rendered")
	}

	fragment, err := runner.renderer.HTMLForExamples(examples)
	if err != nil {
		return fmt.Errorf("render examples html: %w", err)
	}

	return runner.writeOutput(outputPath, fragment)
}

// endpointResult is rendered fragment of one endpoint file.
type endpointResult struct {
	fragment      string
	noDefinitions bool
}

// runEndpointsToHTML renders endpoint files in parallel and writes results in input order.
func (runner *cliRunner) runEndpointsToHTML(paths []string, outputDir string, jobs int) error {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	writeFiles := strings.TrimSpace(outputDir) != ""
	var outputNames []string
	if writeFiles {
		names, err := endpointOutputNames(paths)
		if err != nil {
			return err
		}

		outputNames = names
	}

	results := make([]endpointResult, len(paths))
	var group errgroup.Group
	group.SetLimit(jobs)

	for index, path := range paths {
		group.Go(func() error {
			result, err := runner.renderEndpointFile(path)
			if err != nil {
				return err
			}

			results[index] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for index, result := range results {
		if result.noDefinitions {
			_, _ = fmt.Fprintf(runner.stderr, "warning: endpoint %q has no definitions\n", paths[index])
		}
	}

	if !writeFiles {
		for _, result := range results {
			if _, err := io.WriteString(runner.stdout, result.fragment); err != nil {
				return fmt.Errorf("write html to stdout: %w", err)
			}
		}

		return nil
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("create output dir %q: %w", outputDir, err)
	}

	for index, name := range outputNames {
		outputPath := filepath.Join(outputDir, name)
		if err := os.WriteFile(outputPath, []byte(results[index].fragment), 0o600); err != nil {
			return fmt.Errorf("write html file %q: %w", outputPath, err)
		}
	}

	return nil
}

// renderEndpointFile loads one endpoint file and renders its HTML fragment.
func (runner *cliRunner) renderEndpointFile(path string) (endpointResult, error) {
	endpoint, err := schemahtml.ParseEndpointFile(path)
	if err != nil {
		return endpointResult{}, fmt.Errorf("load endpoint %q: %w", path, err)
	}

	fragment, err := runner.renderer.HTMLForEndpoint(endpoint)
	if err != nil {
		return endpointResult{}, fmt.Errorf("render endpoint %q: %w", path, err)
	}

	return endpointResult{
		fragment:      fragment,
		noDefinitions: len(endpoint.Definitions) == 0,
	}, nil
}

// endpointOutputNames maps every input path to its output file name and rejects
// inputs that would write the same file.
func endpointOutputNames(paths []string) ([]string, error) {
	names := make([]string, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		name := endpointOutputName(path)
		if previous, ok := seen[name]; ok {
			return nil, fmt.Errorf("endpoints %q and %q both write %q", previous, path, name)
		}

		seen[name] = path
		names = append(names, name)
	}

	return names, nil
}

// endpointOutputName maps endpoint file path to output HTML file name.
func endpointOutputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
}

// readInput reads data from file path or stdin.
func (runner *cliRunner) readInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read from stdin: empty input")
	}

	return data, nil
}

// writeOutput writes HTML fragment to stdout or file.
func (runner *cliRunner) writeOutput(path, fragment string) error {
	if strings.TrimSpace(path) == "" {
		if _, err := io.WriteString(runner.stdout, fragment); err != nil {
			return fmt.Errorf("write html to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(path, []byte(fragment), 0o600); err != nil {
		return fmt.Errorf("write html file %q: %w", path, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.SchemaToHTML.runner = runner
	options.ExamplesToHTML.runner = runner
	options.EndpointsToHTML.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"schema2html": strings.TrimSpace(fmt.Sprintf(`
Render schema definition (YAML or JSON) as HTML fragment.
Reads schema from file argument or stdin; writes HTML to file argument or stdout.

Examples:
> $ %s schema2html schema.yml > schema.html
> $ cat schema.json | %s schema2html
`, programName, programName)),
		"examples2html": strings.TrimSpace(fmt.Sprintf(`
Render list of example payloads (YAML or JSON sequence) as HTML fragment.
Key order of every payload is kept as written.

Examples:
> $ %s examples2html examples.yml examples.html
`, programName)),
		"endpoint2html": strings.TrimSpace(fmt.Sprintf(`
Render endpoint definition files: one section per definition with schema and examples.
Files are rendered in parallel; output keeps argument order.

Examples:
> $ %s endpoint2html endpoints/*.yml > endpoints.html
> $ %s endpoint2html -o docs/endpoints -j 4 endpoints/*.yml
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
