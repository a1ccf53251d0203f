package scoring

// Average returns the mean of the scores rounded to the nearest integer,
// half up. Empty input averages to zero.
func Average(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	// Round half up without going through float arithmetic.
	return (sum*2 + len(scores)) / (len(scores) * 2)
}

// Grade maps a 0-100 score to a letter grade. The thresholds are a persisted
// external contract: downstream tooling parses the grades.
func Grade(score int) string {
	switch {
	case score >= 97:
		return "A+"
	case score >= 93:
		return "A"
	case score >= 90:
		return "A-"
	case score >= 87:
		return "B+"
	case score >= 83:
		return "B"
	case score >= 80:
		return "B-"
	case score >= 77:
		return "C+"
	case score >= 73:
		return "C"
	case score >= 70:
		return "C-"
	case score >= 67:
		return "D+"
	case score >= 63:
		return "D"
	case score >= 60:
		return "D-"
	default:
		return "F"
	}
}

var gradeDescriptions = map[string]string{
	"A+": "Exceptional - exceeds all expectations",
	"A":  "Excellent - meets best practices",
	"A-": "Very Good - minor improvements needed",
	"B+": "Good - above average",
	"B":  "Above Average - competent work",
	"B-": "Average Plus - acceptable with room for improvement",
	"C+": "Slightly Above Average - meets minimum standards",
	"C":  "Average - acceptable but unremarkable",
	"C-": "Below Average - needs work",
	"D+": "Poor - significant issues present",
	"D":  "Very Poor - major improvements needed",
	"D-": "Critical - barely functional",
	"F":  "Failing - requires complete overhaul",
}

// Describe returns the one-line description for a letter grade.
func Describe(grade string) string {
	if d, ok := gradeDescriptions[grade]; ok {
		return d
	}
	return "Unknown"
}

// Clamp bounds a score to [0, 100].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Penalty subtracts amount from score, never going below zero.
func Penalty(score, amount int) int {
	if score-amount < 0 {
		return 0
	}
	return score - amount
}

// Bonus adds amount to score, never exceeding 100.
func Bonus(score, amount int) int {
	if score+amount > 100 {
		return 100
	}
	return score + amount
}
