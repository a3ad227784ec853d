package exc

const (
	CodeUnknownFatal                  = "W0000"
	CodeFileNotFound                  = "W0001"
	CodeUnsuportedFileSystemOperation = "W0002"
	CodePermissionDenied              = "W0003"
	CodeUnsupportedFileFormat         = "W0004"
	CodeUnexpectedEOF                 = "W0005"
	CodeUnexpectedToken               = "W0006"
	CodeAllAlternativesFailed         = "W0007"
	CodeRecursionLimitExceeded        = "W0008"
	CodeInvalidLiteral                = "W0009"
	CodeLexError                      = "W0010"
)

const (
	CodeEOF = "_EOF_"
)

var (
	defaultNonFatal = map[string]bool{}
)
