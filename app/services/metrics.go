package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var reactionToggles = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "travelshare",
	Name:      "reaction_toggles_total",
	Help:      "Reaction toggles by target kind and outcome.",
}, []string{"target", "outcome"})
