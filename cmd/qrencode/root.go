/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"
	"strings"

	qrcodegen "github.com/kuntzlab/qrx"
	"github.com/kuntzlab/qrx/render"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	flagEc     string
	flagFamily string
	flagMask   int
	flagFormat string
	flagOut    string
	flagScale  int
	flagOpen   bool
)

var rootCmd = &cobra.Command{
	Use:   "qrencode [text]",
	Short: "Encode text as a QR Code, Micro QR Code, or rMQR symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	rootCmd.Flags().StringVar(&flagEc, "ec", "", "error correction level: L, M, Q, H (default: highest that fits)")
	rootCmd.Flags().StringVar(&flagFamily, "family", "any", "symbol family: any, normal, micro, rmqr")
	rootCmd.Flags().IntVar(&flagMask, "mask", -1, "mask pattern index (default: chosen automatically)")
	rootCmd.Flags().StringVar(&flagFormat, "format", "terminal", "output format: terminal, svg, png")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "output file (required for png; svg is printed to stdout when omitted; ignored for terminal)")
	rootCmd.Flags().IntVar(&flagScale, "scale", 8, "pixels per module (png only)")
	rootCmd.Flags().BoolVar(&flagOpen, "open", false, "open the output file after writing (svg/png only)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	family, err := parseFamily(flagFamily)
	if err != nil {
		return err
	}

	opts := []qrcodegen.Option{qrcodegen.WithFamily(family)}
	if flagEc != "" {
		ec, err := parseEcLevel(flagEc)
		if err != nil {
			return err
		}
		opts = append(opts, qrcodegen.WithEcLevel(ec))
	}
	if flagMask >= 0 {
		opts = append(opts, qrcodegen.WithMask(qrcodegen.Mask(flagMask)))
	}

	sym, encErr := qrcodegen.EncodeText(args[0], opts...)
	if encErr != nil {
		return encErr
	}

	switch flagFormat {
	case "terminal":
		render.Terminal(os.Stdout, sym)
		return nil
	case "svg":
		return writeAndMaybeOpen(render.SVG(sym, true))
	case "png":
		return writePNGAndMaybeOpen(sym)
	default:
		return fmt.Errorf("unknown --format %q: want terminal, svg, or png", flagFormat)
	}
}

func writeAndMaybeOpen(content string) error {
	if flagOut == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(flagOut, []byte(content), 0o644); err != nil {
		return err
	}
	if flagOpen {
		return browser.OpenFile(flagOut)
	}
	return nil
}

func writePNGAndMaybeOpen(sym *qrcodegen.Symbol) error {
	if flagOut == "" {
		return fmt.Errorf("--out is required for --format png")
	}
	f, err := os.Create(flagOut)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := render.WritePNG(f, sym, flagScale); err != nil {
		return err
	}
	if flagOpen {
		return browser.OpenFile(flagOut)
	}
	return nil
}

func parseEcLevel(s string) (qrcodegen.EcLevel, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qrcodegen.Low, nil
	case "M":
		return qrcodegen.Medium, nil
	case "Q":
		return qrcodegen.Quartile, nil
	case "H":
		return qrcodegen.High, nil
	default:
		return 0, fmt.Errorf("unknown --ec %q: want L, M, Q, or H", s)
	}
}

func parseFamily(s string) (qrcodegen.Family, error) {
	switch strings.ToLower(s) {
	case "any", "":
		return qrcodegen.FamilyAny, nil
	case "normal":
		return qrcodegen.FamilyNormal, nil
	case "micro":
		return qrcodegen.FamilyMicro, nil
	case "rmqr":
		return qrcodegen.FamilyRectangular, nil
	default:
		return 0, fmt.Errorf("unknown --family %q: want any, normal, micro, or rmqr", s)
	}
}
