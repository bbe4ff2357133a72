// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package status

import (
	"github.com/courierhq/courier/core/model"
)

// accountView is the provider-neutral shape every resolved account is
// reduced to before classification. Warning names an inconsistency (some
// required fields present, others missing; a declared file that is gone);
// Configured means the account meets its provider's "fully configured"
// predicate; Sources and Credential feed the ok-detail summary.
type accountView struct {
	Enabled    bool
	Configured bool
	Warning    string
	Sources    []string
	Credential string
}

// okContext carries the aggregate values an ok-detail template may use.
type okContext struct {
	Sources    model.SourceSummary
	Hint       string
	Configured int
	Enabled    int
}

// providerDescriptor parameterizes the shared classifier per provider: the
// display name, the reduced account list, the setup guidance and the
// ok-detail template. The precedence policy itself lives in classify and is
// identical for every provider.
type providerDescriptor struct {
	Name        string
	Enabled     bool
	Accounts    []accountView
	SetupDetail string
	OKDetail    func(c okContext) string
}

// classify derives the status row for one provider. Precedence: explicitly
// disabled, then inconsistent configuration, then fully configured, then
// missing setup. The enabled-account denominator never drops below one so
// counts cannot render as "/0".
func classify(d providerDescriptor, showSecrets bool) model.ProviderRow {
	row := model.ProviderRow{Provider: d.Name, Enabled: d.Enabled}
	if !d.Enabled {
		row.State = model.StateOff
		row.Detail = "disabled"
		return row
	}

	enabled := 0
	configured := 0
	var tags []string
	var sample string
	var warnDetail string
	for _, a := range d.Accounts {
		if !a.Enabled {
			continue
		}
		enabled++
		if warnDetail == "" && a.Warning != "" {
			warnDetail = a.Warning
		}
		if a.Configured {
			configured++
			tags = append(tags, a.Sources...)
			if sample == "" {
				sample = a.Credential
			}
		}
	}

	if warnDetail != "" {
		row.State = model.StateWarn
		row.Detail = warnDetail
		return row
	}

	if configured > 0 {
		row.State = model.StateOK
		ctx := okContext{
			Sources:    SummarizeSources(tags),
			Configured: configured,
			Enabled:    max(1, enabled),
		}
		if sample != "" {
			ctx.Hint = Hint(sample, showSecrets)
		}
		row.Detail = d.OKDetail(ctx)
		return row
	}

	row.State = model.StateSetup
	row.Detail = d.SetupDetail
	return row
}
