package stopwords

import "github.com/nickolas-z/goit-cs-hw-05/pkg/wordcount"

// List is a set of words excluded from frequency results when filtering is
// requested. A nil or empty List filters nothing.
type List map[string]struct{}

// ForLanguage returns the stopword list for an ISO 639-1 language code, or
// nil when no list is bundled for that language.
func ForLanguage(code string) List {
	switch code {
	case "en":
		return english
	case "uk":
		return ukrainian
	default:
		return nil
	}
}

// Contains reports whether word is in the list.
func (l List) Contains(word string) bool {
	_, ok := l[word]
	return ok
}

// Filter returns freq without the words in the list. The input map is left
// untouched; an empty list returns it as is.
func (l List) Filter(freq wordcount.Frequency) wordcount.Frequency {
	if len(l) == 0 {
		return freq
	}

	filtered := make(wordcount.Frequency, len(freq))
	for word, count := range freq {
		if _, drop := l[word]; !drop {
			filtered[word] = count
		}
	}
	return filtered
}

// english covers articles, pronouns, auxiliaries and other grammatical words
// that dominate any English text. Contractions are listed in their
// apostrophe-bearing form because the tokenizer keeps interior apostrophes.
var english = List{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "afterwards": {},
	"again": {}, "against": {}, "all": {}, "almost": {}, "alone": {}, "along": {},
	"already": {}, "also": {}, "although": {}, "always": {}, "am": {}, "among": {},
	"amongst": {}, "an": {}, "and": {}, "another": {}, "any": {}, "anyhow": {},
	"anyone": {}, "anything": {}, "anyway": {}, "anywhere": {}, "are": {},
	"aren't": {}, "around": {}, "as": {}, "at": {},

	"back": {}, "be": {}, "became": {}, "because": {}, "become": {}, "becomes": {},
	"been": {}, "before": {}, "beforehand": {}, "behind": {}, "being": {},
	"below": {}, "beside": {}, "besides": {}, "between": {}, "beyond": {},
	"both": {}, "but": {}, "by": {},

	"can": {}, "can't": {}, "cannot": {}, "could": {}, "couldn't": {},

	"did": {}, "didn't": {}, "do": {}, "does": {}, "doesn't": {}, "doing": {},
	"don't": {}, "done": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "elsewhere": {}, "enough": {},
	"etc": {}, "even": {}, "ever": {}, "every": {}, "everyone": {},
	"everything": {}, "everywhere": {},

	"few": {}, "for": {}, "former": {}, "from": {}, "further": {},

	"had": {}, "hadn't": {}, "has": {}, "hasn't": {}, "have": {}, "haven't": {},
	"having": {}, "he": {}, "he'd": {}, "he'll": {}, "he's": {}, "hence": {},
	"her": {}, "here": {}, "here's": {}, "hers": {}, "herself": {}, "him": {},
	"himself": {}, "his": {}, "how": {}, "however": {},

	"i": {}, "i'd": {}, "i'll": {}, "i'm": {}, "i've": {}, "if": {}, "in": {},
	"indeed": {}, "into": {}, "is": {}, "isn't": {}, "it": {}, "it's": {},
	"its": {}, "itself": {},

	"just": {},

	"last": {}, "latter": {}, "least": {}, "less": {}, "let": {}, "let's": {},
	"like": {},

	"made": {}, "make": {}, "many": {}, "may": {}, "maybe": {}, "me": {},
	"meanwhile": {}, "might": {}, "mine": {}, "more": {}, "moreover": {},
	"most": {}, "mostly": {}, "much": {}, "must": {}, "mustn't": {}, "my": {},
	"myself": {},

	"neither": {}, "never": {}, "nevertheless": {}, "next": {}, "no": {},
	"nobody": {}, "none": {}, "nor": {}, "not": {}, "nothing": {}, "now": {},
	"nowhere": {},

	"of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "one": {},
	"only": {}, "onto": {}, "or": {}, "other": {}, "others": {},
	"otherwise": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {},
	"over": {}, "own": {},

	"per": {}, "perhaps": {}, "please": {},

	"rather": {}, "same": {}, "seem": {}, "seemed": {}, "seeming": {},
	"seems": {}, "several": {}, "she": {}, "she'd": {}, "she'll": {},
	"she's": {}, "should": {}, "shouldn't": {}, "since": {}, "so": {},
	"some": {}, "somehow": {}, "someone": {}, "something": {}, "sometime": {},
	"sometimes": {}, "somewhere": {}, "still": {}, "such": {},

	"than": {}, "that": {}, "that's": {}, "the": {}, "their": {}, "theirs": {},
	"them": {}, "themselves": {}, "then": {}, "thence": {}, "there": {},
	"thereafter": {}, "thereby": {}, "therefore": {}, "therein": {},
	"there's": {}, "these": {}, "they": {}, "they'd": {}, "they'll": {},
	"they're": {}, "they've": {}, "this": {}, "those": {}, "through": {},
	"throughout": {}, "thus": {}, "to": {}, "together": {}, "too": {},
	"toward": {}, "towards": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {},

	"very": {}, "via": {},

	"was": {}, "wasn't": {}, "we": {}, "we'd": {}, "we'll": {}, "we're": {},
	"we've": {}, "well": {}, "were": {}, "weren't": {}, "what": {},
	"whatever": {}, "what's": {}, "when": {}, "whence": {}, "whenever": {},
	"where": {}, "whereas": {}, "whereby": {}, "wherein": {}, "where's": {},
	"wherever": {}, "whether": {}, "which": {}, "while": {}, "who": {},
	"who'd": {}, "whoever": {}, "who'll": {}, "who's": {}, "whose": {},
	"why": {}, "will": {}, "with": {}, "within": {}, "without": {},
	"won't": {}, "would": {}, "wouldn't": {},

	"yet": {}, "you": {}, "you'd": {}, "you'll": {}, "you're": {},
	"you've": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},

	"ain't": {}, "it'll": {}, "shan't": {}, "that'll": {}, "when's": {},
}

// ukrainian covers conjunctions, prepositions, particles and pronouns.
var ukrainian = List{
	"і": {}, "й": {}, "та": {}, "але": {}, "або": {}, "чи": {}, "що": {},
	"щоб": {}, "як": {}, "якщо": {}, "коли": {}, "бо": {}, "проте": {},
	"однак": {}, "тому": {}, "також": {}, "теж": {},

	"в": {}, "у": {}, "з": {}, "із": {}, "зі": {}, "на": {}, "до": {},
	"від": {}, "для": {}, "по": {}, "про": {}, "за": {}, "під": {},
	"над": {}, "при": {}, "без": {}, "між": {}, "через": {}, "після": {},
	"перед": {}, "серед": {}, "крім": {}, "біля": {},

	"не": {}, "ні": {}, "ж": {}, "же": {}, "б": {}, "би": {}, "хай": {},
	"нехай": {}, "лише": {}, "тільки": {}, "навіть": {}, "вже": {},
	"уже": {}, "ще": {}, "так": {}, "авжеж": {}, "ну": {},

	"я": {}, "ти": {}, "він": {}, "вона": {}, "воно": {}, "ми": {},
	"ви": {}, "вони": {}, "мене": {}, "мені": {}, "тебе": {}, "тобі": {},
	"його": {}, "йому": {}, "її": {}, "їй": {}, "нас": {}, "нам": {},
	"вас": {}, "вам": {}, "їх": {}, "їм": {}, "ним": {}, "нею": {},
	"ними": {}, "себе": {}, "собі": {},

	"мій": {}, "моя": {}, "моє": {}, "мої": {}, "твій": {}, "наш": {},
	"ваш": {}, "свій": {}, "своя": {}, "своє": {}, "свої": {},

	"цей": {}, "ця": {}, "це": {}, "ці": {}, "той": {}, "то": {},
	"те": {}, "ті": {}, "такий": {}, "така": {}, "таке": {}, "такі": {},
	"хто": {}, "кого": {}, "чого": {}, "чому": {}, "де": {}, "куди": {},
	"звідки": {}, "тут": {}, "там": {}, "тоді": {}, "зараз": {},

	"є": {}, "був": {}, "була": {}, "було": {}, "були": {}, "буде": {},
	"бути": {}, "може": {}, "можна": {}, "треба": {},

	"весь": {}, "вся": {}, "все": {}, "всі": {}, "усе": {}, "усі": {},
	"кожен": {}, "кожна": {}, "інший": {}, "інша": {}, "інше": {},
	"інші": {}, "один": {}, "одна": {}, "одне": {}, "сам": {}, "сама": {},
	"саме": {}, "дуже": {}, "більш": {}, "менш": {}, "багато": {},
	"мало": {},
}
