// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/courierhq/courier/core/status"
	"github.com/courierhq/courier/internal/i18n"
)

// statusCmd represents the 'status' command. It builds the channel report
// from the loaded configuration and renders it; nothing is contacted and
// nothing is written.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-channel readiness",
	Long: `Inspects the loaded configuration and reports, for every messaging
channel, whether it is usable and why not if not. Secrets are rendered as
irreversible fingerprints unless --show-secrets is given, which partially
reveals them for eyeball-matching a known token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func init() {
	statusCmd.Flags().Bool("show-secrets", false, "partially reveal credentials instead of fingerprinting them")
	statusCmd.Flags().Bool("json", false, "emit the raw report as JSON")
}

// runStatus is shared by 'courier status' and the bare 'courier' invocation.
func runStatus(cmd *cobra.Command) error {
	showSecrets := false
	asJSON := false
	if cmd.Flags().Lookup("show-secrets") != nil {
		showSecrets, _ = cmd.Flags().GetBool("show-secrets")
	}
	if cmd.Flags().Lookup("json") != nil {
		asJSON, _ = cmd.Flags().GetBool("json")
	}

	rep := status.BuildReport(&appConfig, status.Options{ShowSecrets: showSecrets})

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	color := false
	if f, ok := out.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	fmt.Fprint(out, RenderReport(rep, color))

	if showSecrets {
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("status.secrets_shown"))
	}
	return nil
}
