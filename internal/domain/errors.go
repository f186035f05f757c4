package domain

// The pipeline has exactly three failure classes, all fatal: reaching the
// data source, understanding what it returned, and recording the result in
// version control. Adapters wrap their underlying errors in one of these
// so the caller can report which stage failed.

// TransportError reports a network or HTTP failure reaching the data source.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// DataFormatError reports malformed JSON, a record missing a required
// field, or an unparseable date.
type DataFormatError struct {
	Err error
}

func (e *DataFormatError) Error() string { return "data format: " + e.Err.Error() }

func (e *DataFormatError) Unwrap() error { return e.Err }

// PublishError reports a failed commit or push of the generated file.
type PublishError struct {
	Err error
}

func (e *PublishError) Error() string { return "publish: " + e.Err.Error() }

func (e *PublishError) Unwrap() error { return e.Err }
