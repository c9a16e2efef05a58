package llm

// CleanVariant rewrites one chunk of raw transcript text into clean markdown.
var CleanVariant = Variant{
	Rank: 1,
	Name: "clean",
	Template: `Clean up this university transcript text. Output ONLY the cleaned content.

CRITICAL RULES:
1. Output ALL data - NEVER use "..." or "continued" or skip anything
2. NO preamble like "Here's the cleaned..." - start directly with the content
3. NO markdown code blocks (no triple backticks)
4. Merge broken lines into complete sentences
5. Use markdown tables for course/grade data

Raw text:
{text}

Cleaned output (start immediately, no preamble):`,
}

// legendVerbatim is the precise first-pass search: it only accepts blocks
// whose purpose is to define grade codes, copied verbatim.
var legendVerbatim = Variant{
	Rank: 1,
	Name: "legend_verbatim",
	Template: `Extract the transcript's **GRADE LEGEND** section verbatim.

Focus on CONTENT, not headers.

Identify any block whose primary purpose is to define grade codes and their meanings.
Such blocks typically contain multiple entries of the form:
- A = ...
- B = ...
- W = ...
- I = ...
- AU = ...
- P / NP / S / U / WF / WP, etc.

These may appear as:
- Code → description lists
- Paragraphs explaining what each grade symbol means
- Tables of grade codes
- Any cluster of grade symbols paired with definitions

Rules:
1. Copy the entire block **exactly as-is** (no rewriting, no formatting changes).
2. If multiple separate legend blocks exist, return all of them in the order found.
3. If nothing matches, output: NO_LEGEND

{text}`,
}

// legendBroad is the lenient second pass: any section that explains what
// letter grades mean qualifies.
var legendBroad = Variant{
	Rank: 2,
	Name: "legend_broad",
	Template: `Find the GRADING SYSTEM or GRADE KEY in this transcript.

Look for ANY section that explains what letter grades mean. This includes:
- Tables with Grade and Quality Points columns
- Lists explaining A, B, C, D, F grades
- Sections titled "Grading System", "Grade Legend", "Marking System", "Grade Scale"
- Any explanation of codes like W (Withdraw), I (Incomplete), AU (Audit), P (Pass)

If you find such a section, copy it EXACTLY as it appears.
If not found, output: NO_LEGEND

{text}`,
}

// LegendVariants returns the escalation ladder for legend extraction:
// verbatim structural match first, broad semantic match second.
func LegendVariants() []Variant {
	return []Variant{legendVerbatim, legendBroad}
}

// CSVVariant formats an extracted legend block into CODE,DESCRIPTION rows.
var CSVVariant = Variant{
	Rank: 1,
	Name: "legend_csv",
	Template: `Convert to CSV: CODE,DESCRIPTION

Only letter codes (A, B, W, WP, AU, I, P). No symbols, no header.

{text}

CSV:`,
}
