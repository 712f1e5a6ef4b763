package ascii

// Character ramps ordered darkest to brightest.
const (
	// CharsetStandard is a short ramp tuned for contrast at small sizes.
	CharsetStandard = " .':!*oe&#%@"
	// CharsetExtended has finer brightness gradations.
	CharsetExtended = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"
)
