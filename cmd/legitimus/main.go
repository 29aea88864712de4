package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BerserkerMigue/legitimus-pro-esqueleto/pkg/articulo"
	"github.com/BerserkerMigue/legitimus-pro-esqueleto/pkg/clave"
	"github.com/BerserkerMigue/legitimus-pro-esqueleto/pkg/pipeline"
	"github.com/BerserkerMigue/legitimus-pro-esqueleto/pkg/store"
	"github.com/BerserkerMigue/legitimus-pro-esqueleto/pkg/tabular"
)

var version = "0.1.0"

// Default file names when the paths are not given on the command line. The
// output database is placed next to the input spreadsheet.
const (
	defaultInputName  = "normas_source.xlsx"
	defaultOutputName = "normas.sqlite"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "legitimus",
		Short: "Normative citation database builder",
		Long: `Legitimus materializes a spreadsheet of Chilean legal-norm citations
into an indexed SQLite database keyed by canonical citation keys.

Manual keys (clave_manual) are kept as-is; keys for the remaining rows are
derived from the norm metadata (special codes, DFL, DL, Ley, Decreto
Supremo). Composite keys like CTRIB.Art31 are split into base key and
article number for citation matching.`,
		Version: version,
	}

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(normalizeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a normas spreadsheet into an indexed SQLite database",
		Long: `Convert reads the normas spreadsheet (.xlsx or .csv), derives the
citation key columns, and writes the articulos table with its lookup indexes.

An existing database at the output path is replaced. Defaults:
  input   ./` + defaultInputName + `
  output  <input dir>/` + defaultOutputName,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := defaultInputName
			if len(args) > 0 {
				inputPath = args[0]
			}
			outputPath := filepath.Join(filepath.Dir(inputPath), defaultOutputName)
			if len(args) > 1 {
				outputPath = args[1]
			}
			codesPath, _ := cmd.Flags().GetString("codes")

			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("input file not found: %s", inputPath)
			} else if err != nil {
				return fmt.Errorf("failed to stat input: %w", err)
			}

			deriver := pipeline.NewDeriver()
			if codesPath != "" {
				codes, err := clave.LoadCodes(codesPath)
				if err != nil {
					return err
				}
				deriver = pipeline.NewDeriverWithCodes(codes)
			}

			fmt.Printf("Converting: %s\n", inputPath)

			fmt.Print("  1. Reading spreadsheet... ")
			table, err := tabular.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			tabular.FixLegacyHeaders(table)
			fmt.Printf("done (%d rows, %d columns)\n", len(table.Rows), len(table.Columns))

			fmt.Print("  2. Deriving citation keys... ")
			total := deriver.Run(table)
			fmt.Println("done")

			fmt.Printf("  3. Writing SQLite database: %s... ", outputPath)
			if err := store.Write(outputPath, table); err != nil {
				return err
			}
			fmt.Println("done")

			fmt.Printf("Conversion complete. Total rows: %d\n", total)
			return nil
		},
	}

	cmd.Flags().String("codes", "", "YAML file overriding the special-code table")
	return cmd
}

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the citation key for one set of norm fields",
		Long: `Resolve derives the citation key and article number a row with the
given field values would receive, without touching any database. Useful for
checking how a hand-authored or ambiguous row will be indexed.

Example:
  legitimus resolve --norma "Ley N° 19.496" --tipo Ley
  legitimus resolve --clave-manual CTRIB.Art31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			manual, _ := cmd.Flags().GetString("clave-manual")
			norma, _ := cmd.Flags().GetString("norma")
			tipo, _ := cmd.Flags().GetString("tipo")
			numero, _ := cmd.Flags().GetString("numero")
			idnorma, _ := cmd.Flags().GetString("idnorma")
			nombreparte, _ := cmd.Flags().GetString("nombreparte")

			derived := pipeline.NewDeriver().DeriveRow(map[string]string{
				pipeline.ColManualKey:   manual,
				pipeline.ColNorma:       norma,
				pipeline.ColNormaTipo:   tipo,
				pipeline.ColNormaNumero: numero,
				pipeline.ColIDNorma:     idnorma,
				pipeline.ColNombreparte: nombreparte,
			})

			fmt.Printf("clave:                   %s\n", derived.Clave)
			fmt.Printf("numero_articulo:         %s\n", derived.NumeroArticulo)
			if nombreparte != "" {
				fmt.Printf("nombreparte_normalizado: %s\n", derived.NombreparteNormalizado)
			}
			return nil
		},
	}

	cmd.Flags().String("clave-manual", "", "hand-authored key (wins over derivation)")
	cmd.Flags().String("norma", "", "norm description text")
	cmd.Flags().String("tipo", "", "norm type (Ley, Decreto Ley, ...)")
	cmd.Flags().String("numero", "", "norm number")
	cmd.Flags().String("idnorma", "", "internal norm id")
	cmd.Flags().String("nombreparte", "", "article descriptor text")
	return cmd
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <text>",
		Short: "Print the normalized form of a nombreparte value",
		Long: `Normalize prints the canonical form of an article descriptor, the same
form stored in nombreparte_normalizado. Query-side consumers must normalize
their lookup strings with this exact transformation or index lookups miss.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(articulo.NormalizeParty(args[0]))
			return nil
		},
	}
}
