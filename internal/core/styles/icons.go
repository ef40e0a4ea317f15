package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconUsers    = "\U000F0849" // 󰡉
	IconReviewer = ""
	IconMail     = ""
	IconSearch   = ""
	IconQuote    = ""
	IconError    = ""
	IconCheck    = ""
)
