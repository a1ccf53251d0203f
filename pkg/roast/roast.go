// Package roast turns scores into commentary. Roast mode draws pseudo-randomly
// from score-tiered pools; serious mode derives a neutral sentence from the
// score alone.
package roast

import (
	"fmt"
	"math/rand"

	"github.com/siteroast/siteroast/models"
)

var highScorePool = []string{ // 95-100
	"Okay, this is actually fire. Respect. 🔥",
	"Chef's kiss. Someone knows what they're doing. 👨‍🍳",
	"I'd hire whoever built this. Outstanding work.",
	"Finally! A website that doesn't make me want to cry.",
	"This is so good, I'm suspicious. What's the catch?",
	"Plot twist: this website is actually good!",
}

var goodScorePool = []string{ // 80-94
	"Not bad, not bad. Your SEO person deserves a raise.",
	"Solid B+. You're in the top 20% of websites I've seen today.",
	"This is like a decent restaurant meal. Won't win awards, but won't make you sick.",
	"Pretty good! Just a few rough edges to polish.",
	"I see potential here. A few tweaks and this could be great.",
	"Acceptable. Which is high praise coming from me.",
}

var midScorePool = []string{ // 60-79
	"Mid. Just... mid. Your website is the plain oatmeal of the internet.",
	"It's giving 'we did the bare minimum' vibes.",
	"Not terrible, but also not memorable. Like elevator music.",
	"Your website is the human equivalent of lukewarm coffee.",
	"I've seen worse. But I've also seen a lot better.",
	"This is the 'participation trophy' of websites.",
	"Functional, but about as exciting as a tax form.",
}

var lowScorePool = []string{ // 40-59
	"Yikes. Did an intern build this during their lunch break?",
	"This website has commitment issues. And by commitment, I mean committing to quality.",
	"I've seen more effort put into a 'coming soon' page.",
	"Your website is like a salad at a steakhouse — technically there, but why?",
	"Bold strategy making everything mediocre. Let's see if it pays off.",
	"This needs work. Like, 'pull an all-nighter' level work.",
}

var badScorePool = []string{ // 20-39
	"I've seen better websites on GeoCities in 1998.",
	"This website is so slow, I aged 5 years waiting for it to load.",
	"Did you build this in Notepad... during a power outage?",
	"Your SEO is hiding like my motivation on a Monday morning.",
	"This site has more issues than a celebrity tabloid.",
	"Calling this 'unfinished' would be generous.",
	"Your website just asked me if it could copy my homework.",
}

var disasterPool = []string{ // 0-19
	"This isn't a website. This is a cry for help. 💀",
	"I've seen error pages with more effort than this.",
	"Congratulations, you've achieved '404 personality'.",
	"This website is the digital equivalent of a dumpster fire.",
	"I'm not saying your website is bad, but... actually yes I am. It's bad.",
	"Burn it down and start over. Trust me on this one.",
	"Your website called and asked if it could borrow some self-respect.",
	"If websites could feel shame, this one would need therapy.",
}

var gradePools = map[string][]string{
	"A+": {
		"Absolutely flawless. Are you sure you didn't cheat?",
		"I'm genuinely impressed. Take my money already!",
	},
	"A": {
		"Excellent work! Someone actually cares about quality.",
		"Top tier website. You should be proud (and I don't say that often).",
	},
	"A-": {
		"So close to perfect! Just a tiny bit more polish needed.",
		"Great job! The A- student who could easily be an A+.",
	},
	"B+": {
		"Very solid effort. Above average in a sea of mediocrity.",
		"Good work! You're in the honors program of web development.",
	},
	"B": {
		"Respectable B-tier website. Not exceptional, but competent.",
		"Decent job. You're passing with style.",
	},
	"B-": {
		"Average with ambition. I see what you're trying to do.",
		"You're on the right track, just keep improving.",
	},
	"C+": {
		"Slightly above average. The participation trophy of grades.",
		"Meh-plus. It's trying, I'll give it that.",
	},
	"C": {
		"Definition of 'fine, I guess'. The vanilla ice cream of websites.",
		"Perfectly average. Not good, not bad, just... there.",
	},
	"C-": {
		"Below average. Like getting a C- in 'Introduction to Breathing'.",
		"Needs significant improvement. Back to the drawing board.",
	},
	"D+": {
		"Barely passing. Your website is one missed assignment away from failing.",
		"This is what 'doing the minimum' looks like.",
	},
	"D": {
		"Failing but trying. Points for effort, I suppose.",
		"This needs serious work. Like, hire-a-professional serious.",
	},
	"D-": {
		"Almost failing. Your website is holding on by a thread.",
		"Critical condition. Call a developer ASAP.",
	},
	"F": {
		"Complete failure. This website is an insult to the internet.",
		"F stands for 'Find a new web developer'. Immediately.",
	},
}

type contextPair struct {
	low string // score < 40
	mid string // score < 70
}

var categoryContexts = map[models.Category]contextPair{
	models.CategoryTitle: {
		low: "Your title is so bad, even the browser tab is embarrassed.",
		mid: "Title exists but it's as exciting as 'Document1.doc'.",
	},
	models.CategoryMetaDescription: {
		low: "No meta description? Google will just make something up. Probably about hamsters.",
		mid: "Your meta description is the literary equivalent of elevator music.",
	},
	models.CategoryHeadings: {
		low: "Heading structure is a disaster. It's like a book with random chapter numbers.",
		mid: "Your headings exist, which is the bare minimum. Congratulations on doing the bare minimum.",
	},
	models.CategoryImages: {
		low: "Images without alt text are just digital decorations for sighted people. Rude.",
		mid: "Some images have alt text. The rest are just guessing games for screen readers.",
	},
	models.CategoryMobile: {
		low: "Not mobile-friendly? What year is this, 2007?",
		mid: "Sort of works on mobile. Like how a shoe sort of works as a hammer.",
	},
	models.CategorySSLSecurity: {
		low: "No HTTPS? Your users' data is basically postcards in the mail.",
		mid: "You have HTTPS, but your security headers are taking a nap.",
	},
	models.CategoryPerformance: {
		low: "This site is so slow, I made coffee while waiting for it to load.",
		mid: "Not the fastest, but hey, patience is a virtue, right?",
	},
	models.CategoryLinks: {
		low: "Link structure is a maze with no exit. Good luck, users!",
		mid: "Links work, but they could be better organized.",
	},
	models.CategoryOpenGraph: {
		low: "No Open Graph? Your social shares will look like sad text messages.",
		mid: "Basic social tags present. Could use more flair for sharing.",
	},
	models.CategorySchema: {
		low: "No structured data. Google is playing guessing games with your content.",
		mid: "Some schema markup. Enough to get by, not enough to excel.",
	},
}

// Roaster selects commentary for scores. The zero value is not usable; build
// one with New.
type Roaster struct {
	serious bool
	pick    func(n int) int
}

// New returns a Roaster. When serious is true the joke pools are never
// consulted.
func New(serious bool) *Roaster {
	return &Roaster{serious: serious, pick: rand.Intn}
}

// NewWithPicker returns a Roaster with a custom pool index picker. Tests use
// this to make selection deterministic.
func NewWithPicker(serious bool, pick func(n int) int) *Roaster {
	return &Roaster{serious: serious, pick: pick}
}

// Comment returns a remark for a category-level score. Never empty.
func (r *Roaster) Comment(score int) string {
	if r.serious {
		return seriousComment(score)
	}
	return r.choose(poolFor(score))
}

// OverallComment returns the summary remark for the final grade.
func (r *Roaster) OverallComment(grade string, score int) string {
	if r.serious {
		return fmt.Sprintf("Overall Score: %d/100 (Grade: %s)", score, grade)
	}
	pool, ok := gradePools[grade]
	if !ok {
		pool = gradePools["F"]
	}
	return r.choose(pool)
}

// CategoryContext returns a category-specific quip for low or mid scores, or
// an empty string when the score is decent or serious mode is on.
func (r *Roaster) CategoryContext(key models.Category, score int) string {
	if r.serious {
		return ""
	}
	ctx, ok := categoryContexts[key]
	if !ok {
		return ""
	}
	switch {
	case score < 40:
		return ctx.low
	case score < 70:
		return ctx.mid
	default:
		return ""
	}
}

func (r *Roaster) choose(pool []string) string {
	return pool[r.pick(len(pool))]
}

func poolFor(score int) []string {
	switch {
	case score >= 95:
		return highScorePool
	case score >= 80:
		return goodScorePool
	case score >= 60:
		return midScorePool
	case score >= 40:
		return lowScorePool
	case score >= 20:
		return badScorePool
	default:
		return disasterPool
	}
}

func seriousComment(score int) string {
	switch {
	case score >= 95:
		return "Excellent. This category meets or exceeds best practices."
	case score >= 80:
		return "Good. Minor improvements could push this to excellent."
	case score >= 60:
		return "Acceptable. Some issues present but functional."
	case score >= 40:
		return "Below average. Several issues need attention."
	case score >= 20:
		return "Poor. Significant problems affecting this category."
	default:
		return "Critical. Immediate attention required for this area."
	}
}

// Pools returns every joke-pool string, category contexts included. Renders
// and tests use it to verify serious output stays joke-free.
func Pools() []string {
	var all []string
	for _, pool := range [][]string{highScorePool, goodScorePool, midScorePool, lowScorePool, badScorePool, disasterPool} {
		all = append(all, pool...)
	}
	for _, pool := range gradePools {
		all = append(all, pool...)
	}
	for _, ctx := range categoryContexts {
		all = append(all, ctx.low, ctx.mid)
	}
	return all
}
