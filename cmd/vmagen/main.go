package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/vma-go/vma/vmagen"
	"github.com/vma-go/vma/vmagen/sink"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate the enum wrapper file from vk_mem_alloc.h."`
	Check   CheckCmd   `cmd:"" help:"Verify the generated file is up to date without writing it."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

// genFlags are the options shared by gen and check.
type genFlags struct {
	Header   string   `help:"Path to vk_mem_alloc.h. Overrides SDK resolution."`
	SDK      string   `help:"Vulkan SDK root. Defaults to $VULKAN_SDK." name:"sdk"`
	Package  string   `help:"Package name of the generated file." default:"vma"`
	OutFile  string   `help:"Name of the generated file." default:"enums_gen.go"`
	Config   string   `help:"YAML file with extra enum config entries." short:"c"`
	ClangArg []string `help:"Extra compiler argument for the header parse. Repeatable."`
}

func (f *genFlags) config() vmagen.Config {
	return vmagen.Config{
		SDKPath:     f.SDK,
		HeaderPath:  f.Header,
		OutFile:     f.OutFile,
		PackageName: f.Package,
		ConfigFile:  f.Config,
		ClangArgs:   f.ClangArg,
	}
}

type GenCmd struct {
	genFlags
	Out string `arg:"" help:"Output directory for the generated file." default:"."`
}

func (c *GenCmd) Run() error {
	result, err := vmagen.Generate(c.config())
	if err != nil {
		return err
	}
	printWarnings(result)
	return result.WriteTo(context.Background(), sink.NewFilesystemSink(c.Out))
}

type CheckCmd struct {
	genFlags
	Out string `arg:"" help:"Directory holding the generated file." default:"."`
}

// Run regenerates into memory and compares against what is on disk. A
// difference means the header or the generator changed without the
// committed file following, which is what CI wants to catch.
func (c *CheckCmd) Run() error {
	result, err := vmagen.Generate(c.config())
	if err != nil {
		return err
	}
	printWarnings(result)

	mem := sink.NewMemorySink()
	if err := result.WriteTo(context.Background(), mem); err != nil {
		return err
	}
	for path, want := range mem.Files() {
		got, err := os.ReadFile(filepath.Join(c.Out, filepath.FromSlash(path)))
		if err != nil {
			return fmt.Errorf("%s: %w (run vmagen gen)", path, err)
		}
		if !bytes.Equal(got, want) {
			return fmt.Errorf("%s is stale (run vmagen gen)", path)
		}
	}
	return nil
}

func printWarnings(result *vmagen.Result) {
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", w.Code, w.Message)
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("vmagen"),
		kong.Description("Generator for the VMA enum wrappers."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
