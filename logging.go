package winpriv

type iLogger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Error(args ...interface{})
}

type quasiLogger func(args ...interface{})

var logger iLogger

func init() {
	logger = quasiLogger(func(args ...interface{}) {})
}

// SetLogger installs a logger for the library's debug and error traces.
// The default discards everything.
func SetLogger(l iLogger) {
	logger = l
}

func (q quasiLogger) Debug(args ...interface{}) {
	q(args)
}

func (q quasiLogger) Info(args ...interface{}) {
	q(args)
}

func (q quasiLogger) Error(args ...interface{}) {
	q(args)
}
