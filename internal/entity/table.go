package entity

// node is one vertex of the named-character-reference trie. Keys are runes
// of the reference name (not including the leading '&'); value is non-empty
// exactly when the path from root to this node spells a complete reference.
type node struct {
	children map[rune]*node
	value    string
}

// root is the trie root; its children are the first rune of each known
// reference name. It is built once from namedReferences at package init.
var root node

func init() {
	root.children = make(map[rune]*node)
	for name, value := range namedReferences {
		insert(name, value)
	}
}

func insert(name, value string) {
	n := &root
	for _, r := range name {
		if n.children == nil {
			n.children = make(map[rune]*node)
		}
		child, ok := n.children[r]
		if !ok {
			child = &node{}
			n.children[r] = child
		}
		n = child
	}
	n.value = value
}

// namedReferences is the supported subset of the HTML5 named character
// reference table (https://html.spec.whatwg.org/multipage/named-characters.html).
// Names that the HTML5 spec permits without a trailing ';' (the legacy
// subset) are listed both with and without it; all others require it.
var namedReferences = map[string]string{
	"amp;": "&", "amp": "&",
	"AMP;": "&", "AMP": "&",
	"lt;": "<", "lt": "<",
	"LT;": "<", "LT": "<",
	"gt;": ">", "gt": ">",
	"GT;": ">", "GT": ">",
	"quot;": "\"", "quot": "\"",
	"QUOT;": "\"", "QUOT": "\"",
	"apos;": "'",

	"nbsp;": " ", "nbsp": " ",
	"copy;": "©", "copy": "©",
	"COPY;": "©", "COPY": "©",
	"reg;": "®", "reg": "®",
	"REG;": "®", "REG": "®",
	"trade;":  "™",
	"deg;":    "°", "deg": "°",
	"plusmn;": "±", "plusmn": "±",
	"cent;":   "¢", "cent": "¢",
	"pound;":  "£", "pound": "£",
	"euro;":   "€",
	"yen;":    "¥", "yen": "¥",
	"sect;":   "§", "sect": "§",
	"para;":   "¶", "para": "¶",
	"middot;": "·", "middot": "·",
	"bull;":   "•",
	"hellip;": "…",
	"prime;":  "′",
	"Prime;":  "″",
	"micro;":  "µ", "micro": "µ",
	"iexcl;":  "¡", "iexcl": "¡",
	"iquest;": "¿", "iquest": "¿",
	"laquo;":  "«", "laquo": "«",
	"raquo;":  "»", "raquo": "»",
	"sup1;": "¹", "sup1": "¹",
	"sup2;": "²", "sup2": "²",
	"sup3;": "³", "sup3": "³",
	"frac12;": "½", "frac12": "½",
	"frac14;": "¼", "frac14": "¼",
	"frac34;": "¾", "frac34": "¾",

	"ndash;": "–",
	"mdash;": "—",
	"lsquo;": "‘",
	"rsquo;": "’",
	"ldquo;": "“",
	"rdquo;": "”",
	"sbquo;": "‚",
	"bdquo;": "„",
	"thinsp;": " ",
	"ensp;":  " ",
	"emsp;":  " ",

	"times;":  "×", "times": "×",
	"divide;": "÷", "divide": "÷",
	"minus;":  "−",
	"lowast;": "∗",
	"le;":     "≤",
	"ge;":     "≥",
	"ne;":     "≠",
	"equiv;":  "≡",
	"asymp;":  "≈",
	"infin;":  "∞",
	"sum;":    "∑",
	"prod;":   "∏",
	"radic;":  "√",
	"part;":   "∂",
	"int;":    "∫",
	"notin;":  "∉",
	"isin;":   "∈",
	"forall;": "∀",
	"exist;":  "∃",
	"empty;":  "∅",
	"nabla;":  "∇",
	"sub;":    "⊂",
	"sup;":    "⊃",
	"sube;":   "⊆",
	"supe;":   "⊇",
	"cap;":    "∩",
	"cup;":    "∪",

	"larr;": "←",
	"uarr;": "↑",
	"rarr;": "→",
	"darr;": "↓",
	"harr;": "↔",
	"lArr;": "⇐",
	"uArr;": "⇑",
	"rArr;": "⇒",
	"dArr;": "⇓",
	"hArr;": "⇔",

	"alpha;": "α", "beta;": "β", "gamma;": "γ", "delta;": "δ",
	"epsilon;": "ε", "zeta;": "ζ", "eta;": "η", "theta;": "θ",
	"iota;": "ι", "kappa;": "κ", "lambda;": "λ", "mu;": "μ",
	"nu;": "ν", "xi;": "ξ", "omicron;": "ο", "pi;": "π",
	"rho;": "ρ", "sigma;": "σ", "tau;": "τ", "upsilon;": "υ",
	"phi;": "φ", "chi;": "χ", "psi;": "ψ", "omega;": "ω",
	"Alpha;": "Α", "Beta;": "Β", "Gamma;": "Γ", "Delta;": "Δ",
	"Epsilon;": "Ε", "Zeta;": "Ζ", "Eta;": "Η", "Theta;": "Θ",
	"Iota;": "Ι", "Kappa;": "Κ", "Lambda;": "Λ", "Mu;": "Μ",
	"Nu;": "Ν", "Xi;": "Ξ", "Omicron;": "Ο", "Pi;": "Π",
	"Rho;": "Ρ", "Sigma;": "Σ", "Tau;": "Τ", "Upsilon;": "Υ",
	"Phi;": "Φ", "Chi;": "Χ", "Psi;": "Ψ", "Omega;": "Ω",

	"loz;":    "◊",
	"spades;": "♠",
	"clubs;":  "♣",
	"hearts;": "♥",
	"diams;":  "♦",

	"AElig;": "Æ", "AElig": "Æ",
	"aelig;": "æ", "aelig": "æ",
	"Aacute;": "Á", "Aacute": "Á",
	"aacute;": "á", "aacute": "á",
	"Eacute;": "É", "Eacute": "É",
	"eacute;": "é", "eacute": "é",
	"Iacute;": "Í", "Iacute": "Í",
	"iacute;": "í", "iacute": "í",
	"Oacute;": "Ó", "Oacute": "Ó",
	"oacute;": "ó", "oacute": "ó",
	"Uacute;": "Ú", "Uacute": "Ú",
	"uacute;": "ú", "uacute": "ú",
	"Ntilde;": "Ñ", "Ntilde": "Ñ",
	"ntilde;": "ñ", "ntilde": "ñ",
	"Ccedil;": "Ç", "Ccedil": "Ç",
	"ccedil;": "ç", "ccedil": "ç",

	"fnof;": "ƒ",
	"curren;": "¤", "curren": "¤",
	"brvbar;": "¦", "brvbar": "¦",
	"uml;": "¨", "uml": "¨",
	"ordf;": "ª", "ordf": "ª",
	"not;": "¬", "not": "¬",
	"shy;": "­", "shy": "­",
	"macr;": "¯", "macr": "¯",
	"acute;": "´", "acute": "´",
	"cedil;": "¸", "cedil": "¸",
	"ordm;": "º", "ordm": "º",
}
