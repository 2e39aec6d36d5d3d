package cli

// Version is the program version, overridable at build time with
// -ldflags "-X github.com/FocuswithJustin/fileencoder/internal/cli.Version=...".
var Version = "1.0.0"

const (
	hintHelp       = "Call -h or --help for more info."
	noticeEmpty    = "FileEncoder needs params! " + hintHelp
	hintNoTextFile = "Specified file doesn't exist! Change source to buffer or enter valid file name."
)

const usage = `Usage:
  fileencoder <file>
  fileencoder [-s|--source file|buffer] [encode|decode] [-f|--file] <path>

Options:
	-h|--help		Help information
	-v|--version		Program version
	-s|--source		Source of input: buffer (default) or file
	-f|--file		File to read from or write to (defaults to the last argument)
	-c|--command		encode (default) or decode; the bare word is enough

Examples:
	fileencoder photo.jpg
	fileencoder -s file -c encode -f filename.ext
	fileencoder --source file --command decode --file filename_ext.txt
	fileencoder --source buffer --command decode -file restored.ext

Environment:
	FILEENCODER_COMPRESS		compress the base64 text (true/false, default false)
	FILEENCODER_ALGORITHM		gzip (default) or xz
	FILEENCODER_TAG_FILENAME	prefix clipboard text with "<name>;" (default true)
	FILEENCODER_LOG_LEVEL		debug, info, warn (default), error
	FILEENCODER_LOG_FORMAT		text (default) or json

Encoding name.ext writes name_ext.txt; decoding name_ext.txt restores name.ext.
Names that already contain underscores come back with dots in their place.
An empty file only round trips with FILEENCODER_COMPRESS=true; its plain
payload is empty and cannot be decoded.
Compression and tagging must match between the encoding and decoding runs.
`
