package content

// Built-in reply content. Knowledge keys are stored pre-normalized:
// lowercase, no trailing question mark, single spaces.

const defaultHelpText = `Here's what I can do:
- Ask me a question, e.g. "what is javascript?"
- "topics" lists the subjects I know about
- "remember <something>" stores a fact about you
- "forget <something>" removes a stored fact or preference
- "forget all" wipes everything I know about you
- "tell me a joke" / "tell me a fact"
- "what do you know about me" shows your profile`

const defaultTopicsText = `I can answer questions about:
- Programming languages (JavaScript, Python, Go)
- Web APIs, REST, and HTTP
- Databases and SQL
- Software testing
- The book shop, courses, and orders on this platform

Try "what is an api?" or "what is sql?"`

var defaultKnowledge = map[string]string{
	"what is javascript":    "JavaScript is a high-level programming language that runs in every web browser. It powers interactive web pages and, through Node.js, servers too.",
	"what is python":        "Python is a general-purpose programming language known for readable syntax. It is widely used for scripting, data analysis, and web backends.",
	"what is go":            "Go is a statically typed language from Google designed for simple, fast, concurrent programs. Goroutines and channels are its signature features.",
	"what is an api":        "An API (Application Programming Interface) is a contract that lets one program talk to another. Web APIs usually exchange JSON over HTTP.",
	"what is rest":          "REST is an architectural style for web APIs: resources addressed by URLs, manipulated with standard HTTP verbs like GET, POST, PUT, and DELETE.",
	"what is http":          "HTTP is the protocol browsers and APIs use to exchange requests and responses on the web. Each request names a method, a path, and headers.",
	"what is json":          "JSON (JavaScript Object Notation) is a lightweight text format for structured data. It is the de facto standard body format for web APIs.",
	"what is sql":           "SQL is the standard language for querying and updating relational databases: SELECT to read, INSERT/UPDATE/DELETE to write.",
	"what is a database":    "A database is an organized, durable store of data. Relational databases arrange data in tables and are queried with SQL.",
	"what is testing":       "Software testing is checking that a program behaves as intended: unit tests for single functions, integration tests for components together.",
	"what is a unit test":   "A unit test exercises one small piece of code in isolation and asserts on its output. Fast, deterministic unit tests are the base of a test suite.",
	"what is a mock":        "A mock is a stand-in for a real dependency in tests. It records calls and returns canned answers so tests stay isolated and fast.",
	"what is authentication": "Authentication is proving who you are, typically with credentials or tokens. It is distinct from authorization, which decides what you may do.",
	"what is a token":       "A token is a signed string a client presents to prove identity or permission, such as a JWT carried in an Authorization header.",
	"what is a webhook":     "A webhook is a reverse API call: instead of you polling a service, the service sends an HTTP request to your URL when something happens.",
	"what is git":           "Git is a distributed version-control system. It tracks snapshots of your files so you can branch, merge, and roll back safely.",
}

var defaultJokes = []string{
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"There are only 10 kinds of people: those who understand binary and those who don't.",
	"A SQL query walks into a bar, goes up to two tables and asks: may I join you?",
	"Why did the developer go broke? Because he used up all his cache.",
	"I would tell you a UDP joke, but you might not get it.",
	"To understand recursion, you must first understand recursion.",
	"A programmer's spouse says: go to the store and get a loaf of bread; if they have eggs, get a dozen. The programmer returns with twelve loaves.",
	"Why do Java developers wear glasses? Because they don't C#.",
	"There are two hard things in computer science: cache invalidation, naming things, and off-by-one errors.",
	"I told my computer I needed a break, and now it won't stop sending me KitKat ads.",
	"Debugging: being the detective in a crime movie where you are also the murderer.",
}

var defaultFacts = []string{
	"The first computer bug was an actual moth found in a Harvard Mark II relay in 1947.",
	"JavaScript was created in ten days in 1995 and was originally called Mocha.",
	"The first website ever built is still online at info.cern.ch.",
	"Python is named after Monty Python, not the snake.",
	"The QWERTY layout was designed to slow typists down so typewriter arms wouldn't jam.",
	"Over 90% of the world's currency exists only on computers.",
	"The Go gopher mascot predates the language; it started as a WFMU radio station mascot.",
	"Email predates the web by about twenty years.",
	"The first 1GB hard drive, released in 1980, weighed about 250 kilograms.",
	"HTTP 404 means 'not found'; the legend that it was room 404 at CERN is itself a 404.",
	"Ada Lovelace published what is considered the first computer program in 1843.",
}

var defaultUnknownReplies = []string{
	"I'm not sure about that one. Try \"topics\" to see what I can help with.",
	"That's outside what I know, sorry. Ask me about programming or this platform.",
	"Hmm, I don't have an answer for that. Could you rephrase it?",
	"I don't know that yet. Try asking in a different way?",
	"You've stumped me. \"help\" shows what I'm good at.",
	"No idea, honestly. I'm better with questions about code and APIs.",
}

// Phrases the knowledge lookup must never fuzzy-match: small talk about the
// assistant's wellbeing is handled elsewhere, and a near-miss against a
// knowledge key here would read as tone-deaf.
var defaultWellbeingPhrases = []string{
	"how are you",
	"how's your day",
	"how is your day",
	"how are things",
	"how do you feel",
	"how's it going",
	"how is it going",
}
