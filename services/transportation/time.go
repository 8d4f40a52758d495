package transportation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"arame/services/nlp"
	"arame/utils"

	"go.uber.org/zap"
)

// defaultLeadTime is applied when the guest gives no usable pickup
// time: the car is requested for half an hour from now.
const defaultLeadTime = 30 * time.Minute

var (
	relativeMinutesRe = regexp.MustCompile(`(?i)en\s+(\d{1,3})\s+minutos?`)
	relativeHoursRe   = regexp.MustCompile(`(?i)en\s+(\d{1,2})\s+horas?`)
	halfHourRe        = regexp.MustCompile(`(?i)en\s+media\s+hora`)
	tomorrowRe        = regexp.MustCompile(`(?i)ma[ñn]ana`)
)

// ParsePickupTime resolves a guest's pickup phrase to an absolute time,
// trying relative offsets first, then clock times, with "mañana"
// pushing a clock time to the next day. A phrase with no usable time
// falls back to now plus 30 minutes.
func ParsePickupTime(phrase string, now time.Time) time.Time {
	if m := relativeMinutesRe.FindStringSubmatch(phrase); m != nil {
		mins, _ := strconv.Atoi(m[1])
		return now.Add(time.Duration(mins) * time.Minute)
	}
	if halfHourRe.MatchString(phrase) {
		return now.Add(30 * time.Minute)
	}
	if m := relativeHoursRe.FindStringSubmatch(phrase); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return now.Add(time.Duration(hours) * time.Hour)
	}

	if clock := nlp.ExtractTime(phrase); clock != "" {
		parts := strings.SplitN(clock, ":", 2)
		hour, _ := strconv.Atoi(parts[0])
		minute, _ := strconv.Atoi(parts[1])
		pickup := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if tomorrowRe.MatchString(phrase) && !mentionsThisMorning(phrase) {
			pickup = pickup.Add(24 * time.Hour)
		} else if !pickup.After(now) {
			// A clock time already past today means tomorrow.
			pickup = pickup.Add(24 * time.Hour)
		}
		return pickup
	}

	utils.GetLogger().Warn("Could not parse pickup time, defaulting",
		zap.String("phrase", phrase))
	return now.Add(defaultLeadTime)
}

// "de la mañana" is a meridiem marker, not a request for tomorrow.
func mentionsThisMorning(phrase string) bool {
	lowered := strings.ToLower(phrase)
	return strings.Contains(lowered, "de la mañana") && !strings.Contains(lowered, "mañana a las") &&
		!strings.HasPrefix(strings.TrimSpace(lowered), "mañana")
}
