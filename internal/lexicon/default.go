package lexicon

import "github.com/verte-zerg/moodlog/internal/model"

type weighted struct {
	phrase string
	weight float64
}

// Weights: 3 for explicit self-reports, 2 for typical cues, 1 or less for
// ambiguous words that also count toward other moods.
var defaultTable = []struct {
	mood    model.Mood
	phrases []weighted
}{
	{model.Happy, []weighted{
		{"sense of accomplishment", 3}, {"over the moon", 3}, {"good day", 2}, {"great day", 2},
		{"feeling good", 2}, {"happy", 2}, {"joy", 2}, {"joyful", 2}, {"glad", 2}, {"delighted", 2},
		{"cheerful", 2}, {"proud", 2}, {"accomplished", 2}, {"grateful", 1.5}, {"thankful", 1.5},
		{"love", 1.5}, {"loved", 1.5}, {"wonderful", 1.5}, {"smile", 1}, {"smiled", 1}, {"laughed", 1},
		{"great", 1}, {"good", 1}, {"productive", 1}, {"promotion", 1}, {"helped", 0.5},
	}},
	{model.Excited, []weighted{
		{"can't wait", 3}, {"excited", 3}, {"thrilled", 3}, {"ecstatic", 3}, {"looking forward", 2},
		{"pumped", 2}, {"stoked", 2}, {"eager", 2}, {"exciting", 2}, {"thrilling", 2},
		{"amazing", 1.5}, {"awesome", 1.5}, {"incredible", 1.5}, {"celebrate", 1.5}, {"celebrating", 1.5},
		{"adventure", 1},
	}},
	{model.Energetic, []weighted{
		{"full of energy", 3}, {"energetic", 3}, {"energized", 3}, {"ready to go", 2}, {"motivated", 2},
		{"refreshed", 2}, {"lively", 2}, {"unstoppable", 2}, {"workout", 1.5}, {"exercise", 1.5},
		{"gym", 1.5}, {"active", 1.5}, {"productive", 1.5}, {"alive", 1},
	}},
	{model.Content, []weighted{
		{"better than expected", 2.5}, {"at ease", 2.5}, {"satisfied", 2.5}, {"content", 2},
		{"comfortable", 2}, {"cozy", 2}, {"relieved", 2}, {"relief", 2}, {"balanced", 2}, {"not bad", 2},
		{"pleasant", 1.5}, {"settled", 1.5}, {"fine", 1}, {"okay", 1}, {"grateful", 1}, {"simple", 1},
	}},
	{model.Calm, []weighted{
		{"calm", 3}, {"calmer", 3}, {"peaceful", 3}, {"relaxed", 3}, {"serene", 3}, {"tranquil", 3},
		{"deep breath", 2}, {"relaxing", 2}, {"meditation", 2}, {"meditate", 2}, {"mindful", 2},
		{"mindfulness", 2}, {"quiet", 1.5}, {"breathe", 1.5}, {"breathing", 1.5}, {"rested", 1.5},
		{"rest", 1},
	}},
	{model.Sad, []weighted{
		{"feeling down", 2.5}, {"unhappy", 3}, {"depressed", 3}, {"lonely", 3}, {"heartbroken", 3},
		{"hopeless", 3}, {"grief", 3}, {"grieving", 3}, {"cried", 2.5}, {"crying", 2.5}, {"sad", 2},
		{"cry", 2}, {"tears", 2}, {"disappointed", 2}, {"alone", 1.5}, {"empty", 1.5},
		{"misunderstood", 1.5}, {"miss", 1}, {"missed", 1}, {"bad", 1}, {"down", 1},
	}},
	{model.Anxious, []weighted{
		{"worst case", 2}, {"anxious", 3}, {"anxiety", 3}, {"panic", 3}, {"worried", 2.5}, {"nervous", 2.5},
		{"overthinking", 2.5}, {"worry", 2}, {"stressed", 2}, {"stress", 2}, {"scared", 2}, {"afraid", 2},
		{"fear", 2}, {"overwhelmed", 2}, {"uneasy", 2}, {"tense", 1.5}, {"deadline", 1}, {"deadlines", 1},
	}},
	{model.Angry, []weighted{
		{"pissed off", 3}, {"angry", 3}, {"furious", 3}, {"rage", 3}, {"livid", 3}, {"outraged", 3},
		{"hate", 2.5}, {"hated", 2.5}, {"mad", 2}, {"yelled", 2}, {"yelling", 2}, {"screamed", 2},
		{"resent", 2}, {"argument", 1.5}, {"fight", 1.5},
	}},
	{model.Irritated, []weighted{
		{"getting on my nerves", 3}, {"irritated", 3}, {"annoyed", 3}, {"fed up", 2.5}, {"irritating", 2.5},
		{"annoying", 2.5}, {"grumpy", 2.5}, {"cranky", 2.5}, {"bothered", 2}, {"impatient", 2},
		{"rude", 1.5}, {"bugging", 1.5}, {"noisy", 1}, {"mad", 1},
	}},
	{model.Frustrated, []weighted{
		{"nothing works", 3}, {"going nowhere", 2.5}, {"frustrated", 3}, {"frustrating", 3},
		{"frustration", 3}, {"give up", 2}, {"stuck", 2}, {"failed", 2}, {"failing", 2}, {"useless", 2},
		{"pointless", 2}, {"struggling", 2}, {"setback", 2}, {"struggle", 1.5}, {"blocked", 1.5},
		{"misunderstood", 1.5}, {"argument", 1}, {"fed up", 1},
	}},
}

func defaultEntries() map[model.Mood][]model.LexiconEntry {
	out := make(map[model.Mood][]model.LexiconEntry, len(defaultTable))
	for _, group := range defaultTable {
		list := make([]model.LexiconEntry, 0, len(group.phrases))
		for _, p := range group.phrases {
			list = append(list, model.LexiconEntry{Mood: group.mood, Phrase: p.phrase, Weight: p.weight})
		}
		out[group.mood] = list
	}
	return out
}

var defaultStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any", "are",
	"aren't", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but",
	"by", "can", "can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does", "doesn't",
	"doing", "don't", "down", "during", "each", "even", "ever", "every", "few", "for", "from", "further",
	"get", "gets", "got", "had", "hadn't", "has", "hasn't", "have", "haven't", "having", "he", "he'd",
	"he'll", "he's", "her", "here", "here's", "hers", "herself", "him", "himself", "his", "how",
	"how's", "i", "i'd", "i'll", "i'm", "i've", "if", "in", "into", "is", "isn't", "it", "it's", "its",
	"itself", "just", "let's", "like", "maybe", "me", "more", "most", "much", "mustn't", "my", "myself",
	"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or", "other", "ought", "our", "ours",
	"ourselves", "out", "over", "own", "really", "same", "shan't", "she", "she'd", "she'll", "she's",
	"should", "shouldn't", "so", "some", "still", "such", "than", "that", "that's", "the", "their",
	"theirs", "them", "themselves", "then", "there", "there's", "these", "they", "they'd", "they'll",
	"they're", "they've", "thing", "things", "this", "those", "though", "through", "to", "too", "under",
	"until", "up", "upon", "very", "was", "wasn't", "we", "we'd", "we'll", "we're", "we've", "were",
	"weren't", "what", "what's", "when", "when's", "where", "where's", "which", "while", "who", "who's",
	"whom", "why", "why's", "will", "with", "won't", "would", "wouldn't", "yet", "you", "you'd",
	"you'll", "you're", "you've", "your", "yours", "yourself", "yourselves",
}
