package ignore

// defaultPatterns is the built-in ignore list applied unless the caller
// disables defaults. Order matters: these run before file-loaded and
// command-line patterns, so later sources can re-include entries with '!'.
var defaultPatterns = []string{
	// Version control and editor state
	".git",
	".svn",
	".hg",
	".DS_Store",
	".idea",
	".vscode",
	".env",

	// Dependencies and build output
	"node_modules",
	"bower_components",
	"vendor",
	"dist",
	"build",
	"target",
	"coverage",
	"__pycache__",
	".venv",
	"venv",

	// Lockfiles and logs
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"*.log",

	// Compiled artifacts
	"*.pyc",
	"*.class",
	"*.o",
	"*.a",
	"*.so",
	"*.dylib",
	"*.dll",
	"*.exe",
	"*.min.js",
	"*.min.css",

	// Archives and media
	"*.zip",
	"*.tar",
	"*.gz",
	"*.bz2",
	"*.7z",
	"*.rar",
	"*.png",
	"*.jpg",
	"*.jpeg",
	"*.gif",
	"*.bmp",
	"*.ico",
	"*.svg",
	"*.pdf",
	"*.mp3",
	"*.mp4",
	"*.woff",
	"*.woff2",
	"*.ttf",
	"*.eot",
}

// DefaultPatterns returns a copy of the built-in ignore list. The underlying
// list is never mutated at runtime.
func DefaultPatterns() []string {
	return append([]string(nil), defaultPatterns...)
}
