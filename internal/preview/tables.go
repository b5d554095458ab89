package preview

// Canned template tables backing the offline preview. Each table maps a
// closed catalog value to a fixed, non-empty list. Lookups fall back to a
// documented default entry so the simulator stays total even if an unknown
// value slips through the edit boundary.

// hooksByGoal maps each campaign goal to four opener phrases, cycled by
// variant index. Unknown goals fall back to the Awareness table.
var hooksByGoal = map[string][]string{
	"Awareness": {
		"Here's something you didn't know you needed.",
		"Meet the upgrade your routine has been missing.",
		"Everyone's talking about this for a reason.",
		"Stop scrolling — this one's worth a look.",
	},
	"Engagement": {
		"Hot take: most products like this get it wrong.",
		"Would you try this? Be honest.",
		"Tag someone who needs to see this.",
		"We asked 1,000 customers — the answers surprised us.",
	},
	"Sales": {
		"Your cart called — it wants this.",
		"The numbers don't lie.",
		"Why pay more for less?",
		"This deal won't sit around.",
	},
	"Lead Generation": {
		"Want the playbook? It's free.",
		"We wrote the guide so you don't have to.",
		"Your shortcut starts here.",
		"Get the checklist thousands swear by.",
	},
	"Retargeting": {
		"Still thinking it over?",
		"You left something behind.",
		"Second thoughts? Here's a nudge.",
		"It's still here — for now.",
	},
}

const hookFallbackGoal = "Awareness"

// startersByStyle maps each headline style to four starter phrases, cycled
// by headline index. Unknown styles fall back to Benefit-first.
var startersByStyle = map[string][]string{
	"Benefit-first": {
		"Get more from",
		"Feel the difference with",
		"Real results, real fast:",
		"Upgrade your routine with",
	},
	"Curiosity / Tease": {
		"The secret behind",
		"What nobody tells you about",
		"We need to talk about",
		"There's a reason everyone wants",
	},
	"How-to": {
		"How to get more from",
		"How to finally love",
		"The right way to use",
		"Master your routine with",
	},
	"Numbered / Listicle": {
		"3 reasons",
		"5 ways",
		"Top 7",
		"The 2-step",
	},
	"Question": {
		"Ready for",
		"Why settle, when there's",
		"What if you tried",
		"Still searching for",
	},
	"Social Proof": {
		"Thousands already chose",
		"Rated 4.8 stars:",
		"Customers can't stop talking about",
		"The crowd favorite:",
	},
	"Urgency / FOMO": {
		"Last chance for",
		"Don't miss",
		"Going fast:",
		"Today only:",
	},
}

const starterFallbackStyle = "Benefit-first"

// bodyTemplate shapes one variation body from the brief's product facts.
type bodyTemplate func(product, usp1, usp2, usp3, proof string) string

// bodyByFramework maps each copywriting framework to its body template.
// Unknown frameworks use genericBody.
var bodyByFramework = map[string]bodyTemplate{
	"AIDA (Attention-Interest-Desire-Action)": func(product, usp1, usp2, usp3, proof string) string {
		return product + " is turning heads. " + usp1 + " meets " + usp2 + ", so you get " + usp3 + ". " + proof + "."
	},
	"PAS (Problem-Agitate-Solution)": func(product, usp1, usp2, usp3, proof string) string {
		return "Tired of settling? The longer you wait, the worse it gets. " + product + " fixes it with " + usp1 + " and " + usp2 + ". " + proof + "."
	},
	"BAB (Before-After-Bridge)": func(product, usp1, usp2, usp3, proof string) string {
		return "Before: the same old results. After: " + usp3 + ", every day. The bridge is " + product + ", built on " + usp1 + ". " + proof + "."
	},
	"FAB (Features-Advantages-Benefits)": func(product, usp1, usp2, usp3, proof string) string {
		return product + " brings " + usp1 + ". That means " + usp2 + ", which delivers " + usp3 + ". " + proof + "."
	},
	"4Cs (Clear-Concise-Compelling-Credible)": func(product, usp1, usp2, usp3, proof string) string {
		return product + ", made simple: " + usp1 + ", " + usp2 + ", " + usp3 + ". " + proof + "."
	},
	"QUEST (Qualify-Understand-Educate-Stimulate-Transition)": func(product, usp1, usp2, usp3, proof string) string {
		return "If " + usp3 + " matters to you, " + product + " was made for you. " + usp1 + " plus " + usp2 + ", no compromises. " + proof + "."
	},
	"Storytelling": func(product, usp1, usp2, usp3, proof string) string {
		return "It started with one question: why is " + usp3 + " so hard to find? " + product + " is the answer, built on " + usp1 + " and " + usp2 + ". " + proof + "."
	},
}

func genericBody(product, usp1, usp2, usp3, proof string) string {
	return product + " delivers " + usp1 + ", " + usp2 + ", and " + usp3 + ". " + proof + "."
}

// uspFallbacks fill in for missing unique selling points, in positional order.
var uspFallbacks = [3]string{"targeted actives", "clean formula", "visible results"}

// emojiCycle decorates variants when emojis are enabled.
var emojiCycle = []string{"✨", "🔥", "💡", "🚀"}
