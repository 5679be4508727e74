/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

// axlgen reflects a CUCM AXL WSDL into Go source. Point it at the
// AXLAPI.wsdl shipped with the CUCM plugin download; the referenced
// AXLSoap.xsd must sit next to it.
package main

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cucmcommunity/cucm-go-sdk/axlgen"
	"github.com/cucmcommunity/cucm-go-sdk/wsdl"
)

func main() {
	var (
		wsdlPath string
		outDir   string
		pkgName  string
		dump     bool
		verbose  bool
	)

	rootCmd := &cobra.Command{
		Use:   "axlgen",
		Short: "Generate a typed Go AXL client from a WSDL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return run(wsdlPath, outDir, pkgName, dump)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&wsdlPath, "wsdl", "", "Path to AXLAPI.wsdl (required)")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "./axl", "Output directory for generated source")
	rootCmd.Flags().StringVarP(&pkgName, "package", "p", "axl", "Package name of the generated source")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "Dump the parsed WSDL document and exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	_ = rootCmd.MarkFlagRequired("wsdl")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(wsdlPath, outDir, pkgName string, dump bool) error {
	logrus.WithField("wsdl", wsdlPath).Info("parsing document")
	def, err := wsdl.ParseFile(wsdlPath)
	if err != nil {
		return err
	}

	ops := 0
	for _, pt := range def.PortTypes {
		ops += len(pt.Operations)
	}
	logrus.WithFields(logrus.Fields{
		"schemas":    len(def.Types.Schemas),
		"messages":   len(def.Messages),
		"operations": ops,
	}).Info("document parsed")

	if dump {
		fmt.Printf("%# v\n", pretty.Formatter(def))
		return nil
	}

	generator := axlgen.New(def, pkgName)
	files, err := generator.Generate()
	if err != nil {
		return err
	}
	for _, skipped := range generator.Skipped {
		logrus.WithField("operation", skipped).Warn("skipped unresolvable operation")
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for name, src := range files {
		formatted, err := format.Source(src)
		if err != nil {
			return fmt.Errorf("formatting %s: %w", name, err)
		}
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, formatted, 0o644); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"file":  path,
			"bytes": len(formatted),
		}).Info("wrote generated source")
	}
	return nil
}
