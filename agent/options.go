package agent

import (
	"go.uber.org/zap"

	"github.com/knnakr/careeragent/logstore"
	"github.com/knnakr/careeragent/notify"
	"github.com/knnakr/careeragent/profile"
)

type options struct {
	client   CompletionClient
	notifier notify.Notifier
	logs     logstore.Store
	profile  *profile.Profile
	logger   *zap.Logger

	maxGenerationIterations int
	maxRevisions            int
	passThreshold           float64
	generationTemperature   float64
	evaluationTemperature   float64
}

func defaultOptions() options {
	return options{
		notifier:                notify.Noop{},
		logs:                    logstore.NewMemoryStore(),
		profile:                 &profile.Profile{Name: "the candidate"},
		logger:                  zap.NewNop(),
		maxGenerationIterations: MaxGenerationIterations,
		maxRevisions:            MaxRevisions,
		passThreshold:           PassThreshold,
		generationTemperature:   0.7,
		evaluationTemperature:   0.3,
	}
}

type Option func(*options)

func WithClient(client CompletionClient) Option {
	return func(o *options) { o.client = client }
}

func WithNotifier(n notify.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

func WithLogs(s logstore.Store) Option {
	return func(o *options) { o.logs = s }
}

func WithProfile(p *profile.Profile) Option {
	return func(o *options) { o.profile = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithMaxGenerationIterations(n int) Option {
	return func(o *options) { o.maxGenerationIterations = n }
}

func WithMaxRevisions(n int) Option {
	return func(o *options) { o.maxRevisions = n }
}

func WithPassThreshold(threshold float64) Option {
	return func(o *options) { o.passThreshold = threshold }
}
