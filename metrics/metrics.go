package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notification attempts by template kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	AuthFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Rejected logins and credentials by reason",
		},
		[]string{"reason"},
	)

	ResumeUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_uploads_total",
			Help: "Resume uploads by outcome",
		},
		[]string{"outcome"},
	)

	CandidateSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "candidate_submissions_total",
			Help: "Candidate submissions, split by whether a new record was created",
		},
		[]string{"created"},
	)
)
