package translit

// replacements maps single non-ASCII runes to their ASCII substitutions.
// It is the only source of expanding substitutions (values longer than one
// character) in the pipeline, and it is shared by Convert and the stage
// API — there is exactly one copy of this table.
//
// Every key is non-ASCII and none of them decomposes under NFD, so the
// table sees the same runes whether substitution runs before or after
// decomposition. Every value is ASCII-only; a test enforces both
// invariants.
var replacements = map[rune]string{
	// Single quotes, primes, single guillemets.
	'‘': "'", // ‘ left single quotation mark
	'’': "'", // ’ right single quotation mark (also apostrophe)
	'‚': "'", // ‚ single low-9 quotation mark
	'‛': "'", // ‛ single high-reversed-9 quotation mark
	'′': "'", // ′ prime
	'‹': "'", // ‹
	'›': "'", // ›

	// Double quotes, double prime, guillemets.
	'“': `"`, // “
	'”': `"`, // ”
	'„': `"`, // „
	'‟': `"`, // ‟
	'″': `"`, // ″ double prime
	'«': `"`, // «
	'»': `"`, // »

	// Dash and hyphen variants, including the minus sign.
	'‐': "-", // ‐ hyphen
	'‑': "-", // non-breaking hyphen
	'‒': "-", // ‒ figure dash
	'–': "-", // – en dash
	'—': "-", // — em dash
	'―': "-", // ― horizontal bar
	'−': "-", // − minus sign

	// Ellipsis.
	'…': "...", // …

	// Bullets and arithmetic signs.
	'•': "*", // • bullet
	'·': ".", // · middle dot
	'×': "x", // × multiplication sign
	'÷': "/", // ÷ division sign

	// Degree sign. The surrounding spaces keep "25°C" readable as
	// "25 deg C"; the whitespace collapse removes any doubling.
	'°': " deg ",

	// Currency.
	'€': "EUR", // €
	'£': "GBP", // £
	'¥': "JPY", // ¥
	'¢': "c",   // ¢

	// Legal marks.
	'©': "(c)",  // ©
	'®': "(R)",  // ®
	'™': "(TM)", // ™

	// No-break space becomes a plain space: dropping it with the
	// catch-all would fuse the words around it.
	' ': " ",
}
