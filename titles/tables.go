package titles

import "regexp"

// actionVerbs maps a leading verb (or two-word verb phrase) to the gerund
// that opens the generated title.
var actionVerbs = map[string]string{
	// creation
	"create": "Creating", "make": "Making", "build": "Building",
	"generate": "Generating", "add": "Adding", "implement": "Implementing",
	"develop": "Developing", "design": "Designing", "write": "Writing",
	"setup": "Setting Up", "set up": "Setting Up",
	"initialize": "Initializing", "init": "Initializing",
	"scaffold": "Scaffolding", "bootstrap": "Bootstrapping",
	"establish": "Establishing", "introduce": "Introducing",
	"compose": "Composing", "construct": "Constructing", "craft": "Crafting",
	"draft": "Drafting", "formulate": "Formulating", "produce": "Producing",

	// modification
	"fix": "Fixing", "update": "Updating", "modify": "Modifying",
	"change": "Changing", "edit": "Editing", "revise": "Revising",
	"adjust": "Adjusting", "alter": "Altering", "amend": "Amending",
	"correct": "Correcting", "patch": "Patching", "tweak": "Tweaking",
	"enhance": "Enhancing", "extend": "Extending", "expand": "Expanding",
	"upgrade": "Upgrading", "improve": "Improving",

	// refactoring
	"refactor": "Refactoring", "restructure": "Restructuring",
	"reorganize": "Reorganizing", "rework": "Reworking",
	"rewrite": "Rewriting", "simplify": "Simplifying",
	"streamline": "Streamlining", "clean": "Cleaning",
	"cleanup": "Cleaning Up", "clean up": "Cleaning Up", "tidy": "Tidying",
	"modernize": "Modernizing", "consolidate": "Consolidating",
	"modularize": "Modularizing", "decouple": "Decoupling",
	"abstract": "Abstracting", "extract": "Extracting", "inline": "Inlining",
	"rename": "Renaming", "move": "Moving", "relocate": "Relocating",
	"merge": "Merging", "split": "Splitting", "separate": "Separating",

	// removal
	"remove": "Removing", "delete": "Deleting", "drop": "Dropping",
	"eliminate": "Eliminating", "clear": "Clearing", "purge": "Purging",
	"strip": "Stripping", "deprecate": "Deprecating",
	"disable": "Disabling", "uninstall": "Uninstalling",

	// testing
	"test": "Testing", "verify": "Verifying", "validate": "Validating",
	"check": "Checking", "assert": "Asserting", "ensure": "Ensuring",
	"confirm": "Confirming", "audit": "Auditing", "inspect": "Inspecting",
	"examine": "Examining", "analyze": "Analyzing", "analyse": "Analysing",
	"evaluate": "Evaluating", "assess": "Assessing",
	"benchmark": "Benchmarking", "profile": "Profiling",
	"measure": "Measuring", "monitor": "Monitoring", "trace": "Tracing",
	"lint": "Linting",

	// debugging
	"debug": "Debugging", "troubleshoot": "Troubleshooting",
	"diagnose": "Diagnosing", "investigate": "Investigating",
	"resolve": "Resolving", "solve": "Solving", "address": "Addressing",
	"handle": "Handling", "track": "Tracking", "identify": "Identifying",
	"isolate": "Isolating", "reproduce": "Reproducing", "bisect": "Bisecting",

	// documentation
	"document": "Documenting", "describe": "Describing",
	"explain": "Explaining", "comment": "Commenting",
	"annotate": "Annotating", "clarify": "Clarifying",
	"elaborate": "Elaborating", "outline": "Outlining",
	"summarize": "Summarizing", "detail": "Detailing",
	"specify": "Specifying", "define": "Defining", "note": "Noting",
	"record": "Recording", "log": "Logging",

	// performance
	"optimize": "Optimizing", "speed up": "Speeding Up",
	"accelerate": "Accelerating", "boost": "Boosting", "cache": "Caching",
	"parallelize": "Parallelizing", "async": "Making Async",
	"lazy": "Lazy Loading", "prefetch": "Prefetching",
	"preload": "Preloading", "compress": "Compressing",
	"minify": "Minifying", "bundle": "Bundling", "tree-shake": "Tree Shaking",

	// deployment
	"deploy": "Deploying", "release": "Releasing", "publish": "Publishing",
	"ship": "Shipping", "launch": "Launching", "push": "Pushing",
	"rollout": "Rolling Out", "roll out": "Rolling Out",
	"rollback": "Rolling Back", "roll back": "Rolling Back",
	"revert": "Reverting", "promote": "Promoting", "migrate": "Migrating",
	"provision": "Provisioning", "configure": "Configuring",
	"config": "Configuring", "install": "Installing",

	// security
	"secure": "Securing", "encrypt": "Encrypting", "decrypt": "Decrypting",
	"hash": "Hashing", "sanitize": "Sanitizing", "escape": "Escaping",
	"authenticate": "Authenticating", "authorize": "Authorizing",
	"protect": "Protecting", "guard": "Guarding", "shield": "Shielding",
	"harden": "Hardening", "lock": "Locking", "restrict": "Restricting",
	"limit": "Limiting", "throttle": "Throttling",
	"rate-limit": "Rate Limiting",

	// review
	"review": "Reviewing", "approve": "Approving", "reject": "Rejecting",
	"accept": "Accepting", "request": "Requesting", "suggest": "Suggesting",
	"propose": "Proposing", "recommend": "Recommending",
	"feedback": "Providing Feedback", "critique": "Critiquing",

	// integration
	"integrate": "Integrating", "connect": "Connecting", "link": "Linking",
	"bind": "Binding", "wire": "Wiring", "hook": "Hooking",
	"attach": "Attaching", "join": "Joining", "combine": "Combining",
	"unify": "Unifying", "sync": "Syncing", "synchronize": "Synchronizing",
	"import": "Importing", "export": "Exporting", "load": "Loading",
	"fetch": "Fetching", "pull": "Pulling", "get": "Getting",
	"retrieve": "Retrieving", "query": "Querying", "search": "Searching",
	"find": "Finding", "lookup": "Looking Up", "look up": "Looking Up",

	// data
	"save": "Saving", "store": "Storing", "persist": "Persisting",
	"serialize": "Serializing", "deserialize": "Deserializing",
	"parse": "Parsing", "format": "Formatting", "transform": "Transforming",
	"convert": "Converting", "map": "Mapping", "reduce": "Reducing",
	"filter": "Filtering", "sort": "Sorting", "group": "Grouping",
	"aggregate": "Aggregating", "normalize": "Normalizing",
	"denormalize": "Denormalizing", "flatten": "Flattening",
	"nest": "Nesting", "index": "Indexing",

	// ui
	"render": "Rendering", "display": "Displaying", "show": "Showing",
	"hide": "Hiding", "toggle": "Toggling", "animate": "Animating",
	"transition": "Transitioning", "style": "Styling", "theme": "Theming",
	"layout": "Laying Out", "position": "Positioning", "align": "Aligning",
	"center": "Centering", "resize": "Resizing", "scale": "Scaling",
	"scroll": "Scrolling", "paginate": "Paginating",
	"virtualize": "Virtualizing",

	// lifecycle
	"start": "Starting", "stop": "Stopping", "restart": "Restarting",
	"pause": "Pausing", "resume": "Resuming", "suspend": "Suspending",
	"terminate": "Terminating", "kill": "Killing", "spawn": "Spawning",
	"fork": "Forking", "clone": "Cloning", "copy": "Copying",
	"duplicate": "Duplicating", "backup": "Backing Up",
	"restore": "Restoring", "recover": "Recovering", "reset": "Resetting",
	"finalize": "Finalizing", "teardown": "Tearing Down",
	"destroy": "Destroying",

	// communication
	"send": "Sending", "receive": "Receiving", "broadcast": "Broadcasting",
	"emit": "Emitting", "listen": "Listening", "subscribe": "Subscribing",
	"unsubscribe": "Unsubscribing", "notify": "Notifying",
	"alert": "Alerting", "warn": "Warning", "report": "Reporting",
	"ping": "Pinging", "poll": "Polling", "stream": "Streaming",
	"pipe": "Piping", "route": "Routing", "redirect": "Redirecting",
	"forward": "Forwarding", "proxy": "Proxying",

	// general
	"run": "Running", "execute": "Executing", "invoke": "Invoking",
	"call": "Calling", "trigger": "Triggering", "fire": "Firing",
	"dispatch": "Dispatching", "schedule": "Scheduling", "queue": "Queueing",
	"process": "Processing", "compute": "Computing",
	"calculate": "Calculating", "determine": "Determining",
	"decide": "Deciding", "select": "Selecting", "choose": "Choosing",
	"pick": "Picking", "use": "Using", "apply": "Applying",
	"enable": "Enabling", "activate": "Activating",
	"deactivate": "Deactivating", "set": "Setting", "unset": "Unsetting",
	"assign": "Assigning", "allocate": "Allocating",
	"deallocate": "Deallocating", "free": "Freeing", "acquire": "Acquiring",
	"obtain": "Obtaining", "register": "Registering",
	"unregister": "Unregistering", "mount": "Mounting",
	"unmount": "Unmounting", "wrap": "Wrapping", "unwrap": "Unwrapping",
	"pack": "Packing", "unpack": "Unpacking", "encode": "Encoding",
	"decode": "Decoding", "compile": "Compiling",
	"transpile": "Transpiling", "interpret": "Interpreting",
	"exec": "Executing",
}

// commonPrefixes is applied once each, in order, to strip greetings,
// request phrases and filler from the head of a prompt.
var commonPrefixes = compileAll(
	// greetings
	`^hey\s+claude[,.]?\s*`,
	`^hi\s+claude[,.]?\s*`,
	`^hello\s+claude[,.]?\s*`,
	`^dear\s+claude[,.]?\s*`,
	`^claude[,.]?\s*`,

	// request phrases
	`^can\s+you\s+(please\s+)?`,
	`^could\s+you\s+(please\s+)?`,
	`^would\s+you\s+(please\s+)?`,
	`^will\s+you\s+(please\s+)?`,
	`^please\s+(can\s+you\s+)?`,
	`^i\s+need\s+you\s+to\s+`,
	`^i\s+want\s+you\s+to\s+`,
	`^i'?d\s+like\s+you\s+to\s+`,
	`^i\s+would\s+like\s+you\s+to\s+`,
	`^help\s+me\s+(to\s+)?`,
	`^let'?s\s+`,
	`^go\s+ahead\s+and\s+`,
	`^now\s+`,
	`^next[,.]?\s+`,
	`^then[,.]?\s+`,
	`^also[,.]?\s+`,
	`^additionally[,.]?\s+`,
	`^furthermore[,.]?\s+`,
	`^moreover[,.]?\s+`,

	// fillers
	`^okay[,.]?\s*`,
	`^ok[,.]?\s*`,
	`^so[,.]?\s*`,
	`^well[,.]?\s*`,
	`^alright[,.]?\s*`,
	`^right[,.]?\s*`,
	`^sure[,.]?\s*`,
	`^yeah[,.]?\s*`,
	`^yes[,.]?\s*`,
	`^um+[,.]?\s*`,
	`^uh+[,.]?\s*`,
	`^hmm+[,.]?\s*`,
	`^just\s+`,
	`^quickly\s+`,
	`^simply\s+`,
	`^basically\s+`,
)

// noisePatterns flag prompts that open with machine-generated content
// rather than a human request.
var noisePatterns = compileAll(
	`^(?:Unchecked|Error|Warning|Failed|Exception|TypeError|SyntaxError|ReferenceError)`,
	`^(?:runtime\.|console\.|window\.)`,
	`^(?:\[[\w\s]+\])`,          // [ERROR], [WARN], [INFO]
	`^(?:\d{4}-\d{2}-\d{2})`,    // date-stamped log lines
	`^(?:at\s+\w+\s*\()`,        // stack trace frames
	`^(?:GET|POST|PUT|DELETE|PATCH)\s+/`,
	`^(?:\d{3}\s+)`,             // HTTP status codes
	`^(?:npm|yarn|pnpm)\s+(?:ERR|WARN)`,
	`^(?:\.{3})`,                // continuation dots
)

// requestPatterns recover an actionable span from otherwise-noisy text.
var requestPatterns = compileAll(
	`(?:please|can you|need to|want to|help me)\s+(.+?)(?:\.|$)`,
	`(?:fix|update|create|add|implement|review|check)\s+(.+?)(?:\.|$)`,
)

// requestIndicators mark a sentence as a user request even without a
// known action verb at its head.
var requestIndicators = []string{
	"please", "can you", "need to", "want to", "help me",
	"should", "fix", "update", "create", "review",
}

var (
	quotedStringRe = regexp.MustCompile("['\"`“”]([^'\"`“”]+?)['\"`“”]")

	filePathRe = regexp.MustCompile(`(?:^|[\s'"(])((?:\.{0,2}/)?(?:[\w.-]+/)*[\w.-]+\.\w+)(?:$|[\s'")])`)

	leadingArticleRe = regexp.MustCompile(`(?i)^(the|a|an|some|any)\s+`)

	wordCleanRe = regexp.MustCompile(`[^\w.-]`)
)

// featurePatterns associate a preceding phrase with a domain noun.
var featurePatterns = compileAll(
	`(?:the\s+)?(\w+(?:\s+\w+)*?)\s+(?:feature|functionality|capability|module|component|service|system|api|endpoint|route|page|view|screen|form|button|modal|dialog|panel|widget|controller|handler|middleware|hook|util|helper|function|method|class|interface|type|model|schema|migration|seed|fixture|test|spec|config|setting|option|parameter|argument|variable|constant|enum|flag|toggle|switch)`,
	`(?:the\s+)?(\w+(?:\s+\w+)*?)\s+(?:bug|issue|error|problem|defect|regression|glitch|flaw)`,
	`(?:the\s+)?(\w+(?:\s+\w+)*?)\s+(?:logic|algorithm|implementation|behavior|behaviour|flow|process|workflow|pipeline|chain)`,
	`(?:a\s+)?new\s+(\w+(?:\s+\w+)*)`,
	`(?:the\s+)?(\w+)\s+(?:to|for|in|on|at|with)\s+`,
)

var stopWords = wordSet(
	"a", "an", "the", "this", "that", "these", "those",
	"i", "you", "we", "they", "he", "she", "it",
	"my", "your", "our", "their", "his", "her", "its",
	"me", "us", "them", "him",
	"is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having",
	"do", "does", "did", "doing",
	"will", "would", "could", "should", "may", "might", "must", "shall",
	"can", "need", "want",
	"and", "or", "but", "nor", "so", "yet", "for",
	"in", "on", "at", "to", "of", "from", "by", "with", "as",
	"into", "onto", "upon", "out", "up", "down", "off", "over", "under",
	"through", "between", "among", "within", "without", "about", "after",
	"before", "during", "since", "until", "unless", "while", "although",
	"if", "when", "where", "how", "why", "what", "which", "who", "whom",
	"some", "any", "all", "most", "many", "much", "few", "several",
	"each", "every", "either", "neither", "both", "other", "another",
	"such", "same", "different", "various", "certain",
	"first", "second", "third", "last", "next", "previous",
	"new", "old", "good", "bad", "best", "worst", "better", "worse",
	"big", "small", "large", "little", "great", "long", "short",
	"high", "low", "top", "bottom", "left", "right", "front", "back",
	"more", "less", "very", "too", "enough", "quite", "rather", "really",
	"just", "only", "even", "still", "already", "always", "never", "often",
	"sometimes", "usually", "also", "again", "now", "then", "here", "there",
	"please", "thanks", "thank", "sorry", "okay", "ok", "yes", "no",
	"maybe", "perhaps", "probably", "possibly", "certainly", "definitely",
	"actually", "basically", "essentially", "simply", "mainly", "mostly",
	"especially", "particularly", "specifically", "generally", "typically",
	"however", "therefore", "thus", "hence", "consequently", "accordingly",
	"furthermore", "moreover", "additionally", "besides", "meanwhile",
	"instead", "otherwise", "nevertheless", "nonetheless", "regardless",
)

// nounBreakWords stop noun collection once a content word has been seen.
var nounBreakWords = wordSet(
	"to", "for", "in", "on", "at", "with", "by", "from", "and", "or",
)

// smallWords stay lowercase mid-title.
var smallWords = wordSet(
	"a", "an", "the", "and", "or", "but",
	"in", "on", "at", "to", "for", "of", "with", "by",
)

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`(?i)` + p)
	}
	return res
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
