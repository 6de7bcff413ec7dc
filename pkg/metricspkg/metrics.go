// Package metricspkg defines the prometheus collectors exposed on the status server.
package metricspkg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandInvocations counts slash command invocations by command name.
	CommandInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "avion",
		Name:      "command_invocations_total",
		Help:      "Number of slash command invocations.",
	}, []string{"command"})

	// TransferOutcomes counts resolved transfer negotiations by outcome.
	TransferOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "avion",
		Name:      "transfer_outcomes_total",
		Help:      "Number of transfer negotiations by terminal outcome.",
	}, []string{"outcome"})

	// TransferRejections counts transfers rejected before a confirmation window opened.
	TransferRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "avion",
		Name:      "transfer_rejections_total",
		Help:      "Number of transfer requests rejected during validation.",
	}, []string{"reason"})
)
