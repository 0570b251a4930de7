package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/rs/zerolog/log"

	"github.com/scalarorg/evmgen/config"
	"github.com/scalarorg/evmgen/pkg/codegen"
)

// Generator drives binding generation for every configured contract.
type Generator struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Run generates one binding file per contract. A failure on any event aborts
// that contract's generation with no partial output written.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	files := make(map[string]string, len(g.cfg.Contracts))
	for _, contract := range g.cfg.Contracts {
		file := outputFileName(contract.Name)
		if prev, ok := files[file]; ok {
			return fmt.Errorf("contracts %s and %s resolve to the same output file %s", prev, contract.Name, file)
		}
		files[file] = contract.Name
	}
	for _, contract := range g.cfg.Contracts {
		src, err := g.GenerateContract(contract)
		if err != nil {
			return fmt.Errorf("contract %s: %w", contract.Name, err)
		}
		out := filepath.Join(g.cfg.OutDir, outputFileName(contract.Name))
		if err := os.WriteFile(out, src, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		log.Info().Str("contract", contract.Name).Str("file", out).Msg("Generated event bindings")
	}
	return nil
}

// outputFileName derives a contract's binding file name from its normalized
// identifier, the same one the generated type names use.
func outputFileName(contract string) string {
	return strings.ToLower(abi.ToCamelCase(contract)) + ".go"
}

// GenerateContract reads the contract's ABI file and produces the formatted
// binding source.
func (g *Generator) GenerateContract(contract config.ContractConfig) ([]byte, error) {
	raw, err := os.ReadFile(contract.ABIPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read ABI: %w", err)
	}
	return g.Generate(contract, raw)
}

// Generate produces the formatted binding source for one contract from raw
// ABI JSON.
func (g *Generator) Generate(contract config.ContractConfig, rawABI []byte) ([]byte, error) {
	parsed, err := abi.JSON(bytes.NewReader(rawABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}
	unnamed, err := unnamedInputs(rawABI)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ABI JSON: %w", err)
	}

	ctx := codegen.NewContext(contract.Name, parsed, codegen.Options{
		Aliases:       contract.EventAliases,
		Derives:       contract.Derives,
		RuntimeImport: g.cfg.RuntimeImport,
		UnnamedInputs: unnamed,
	})
	declarations, err := ctx.EventsDeclaration()
	if err != nil {
		return nil, err
	}
	methods, err := ctx.EventMethods()
	if err != nil {
		return nil, err
	}

	compact := new(bytes.Buffer)
	if err := json.Compact(compact, rawABI); err != nil {
		return nil, fmt.Errorf("failed to compact ABI JSON: %w", err)
	}

	var buf bytes.Buffer
	err = fileTemplate.Execute(&buf, fileData{
		Package:       g.cfg.Package,
		Contract:      ctx.Contract(),
		RuntimePkg:    ctx.RuntimePkg(),
		RuntimeImport: ctx.RuntimeImport(),
		ABIJSON:       strconv.Quote(compact.String()),
		Declarations:  declarations,
		Methods:       methods,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render binding file: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// unnamedInputs records which event inputs carry no name in the raw ABI
// document, keyed the way abi.JSON keys its event table. The parser rewrites
// missing input names to arg<i> placeholders, so the distinction only exists
// before parsing.
func unnamedInputs(rawABI []byte) (map[string][]bool, error) {
	var entries []struct {
		Type   string `json:"type"`
		Name   string `json:"name"`
		Inputs []struct {
			Name string `json:"name"`
		} `json:"inputs"`
	}
	if err := json.Unmarshal(rawABI, &entries); err != nil {
		return nil, err
	}
	masks := make(map[string][]bool)
	for _, entry := range entries {
		if entry.Type != "event" {
			continue
		}
		// overloaded events get numeric key suffixes, in declaration order
		key := entry.Name
		for idx := 0; ; idx++ {
			if _, taken := masks[key]; !taken {
				break
			}
			key = fmt.Sprintf("%s%d", entry.Name, idx)
		}
		mask := make([]bool, len(entry.Inputs))
		for i, input := range entry.Inputs {
			mask[i] = input.Name == ""
		}
		masks[key] = mask
	}
	return masks, nil
}
