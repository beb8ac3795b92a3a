package text

var SupportedExtensions = []string{
	".txt",
	".csv",
	".log",
	".md",
}

var SupportedMimeTypes = []string{
	"text/plain",
	"text/markdown",
	"text/csv",
}
