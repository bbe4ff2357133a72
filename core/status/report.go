// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package status

import (
	"github.com/courierhq/courier/core/model"
	"github.com/courierhq/courier/internal/config"
)

// Options controls report rendering. ShowSecrets switches credential hints
// from fingerprints to partial reveals; nothing else is configurable.
type Options struct {
	ShowSecrets bool
}

// BuildReport assembles the status report: one row per channel in fixed
// order, plus any per-account detail tables. It performs no classification
// itself and cannot fail; misconfiguration surfaces as setup/warn rows.
func BuildReport(cfg *config.Config, opts Options) model.Report {
	var rep model.Report

	row, tables := whatsappStatus(cfg, opts)
	rep.Rows = append(rep.Rows, row)
	rep.Details = append(rep.Details, tables...)

	rep.Rows = append(rep.Rows,
		telegramStatus(cfg, opts),
		discordStatus(cfg, opts),
		slackStatus(cfg, opts),
		signalStatus(cfg, opts),
		imessageStatus(cfg, opts),
		msteamsStatus(cfg, opts),
	)

	return rep
}
