package fetch

import (
	"net/url"
	"strings"
)

// Platform is a recognized job board, used to pick extraction selectors.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformLinkedIn   Platform = "linkedin"
	PlatformUnknown    Platform = "unknown"
)

// DetectPlatform identifies the job board from the posting URL's host.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	default:
		return PlatformUnknown
	}
}

// ContentSelectors returns the selectors tried in order when extracting the
// posting description.
func (p Platform) ContentSelectors() []string {
	switch p {
	case PlatformGreenhouse:
		return []string{".job__description.body", ".job__description", "#content", "main"}
	case PlatformLever:
		return []string{".posting-description", ".posting-page", ".content", "main"}
	case PlatformWorkday:
		return []string{"[data-automation-id='jobDescription']", ".job-description", "main"}
	case PlatformLinkedIn:
		return []string{".description__text", ".show-more-less-html__markup", "main"}
	default:
		return []string{
			".job-description",
			"#job-description",
			".job-details",
			"[data-testid='job-description']",
			"main",
			"article",
			".content",
			"#content",
		}
	}
}

// NoiseSelectors returns elements stripped before extraction: application
// forms, EEO boilerplate, share widgets.
func (p Platform) NoiseSelectors() []string {
	common := []string{
		"form",
		".application-form",
		".apply-button-container",
		".voluntary-disclosure",
		".eeo-statement",
		".self-identification",
		".social-share",
		".share-buttons",
		".cookie-consent",
	}

	switch p {
	case PlatformGreenhouse:
		return append(common, ".application--wrapper", ".post-apply")
	case PlatformLever:
		return append(common, ".posting-apply", ".lever-application-form")
	case PlatformWorkday:
		return append(common, "[data-automation-id='applyButton']")
	case PlatformLinkedIn:
		return append(common, ".top-card-layout__cta-container", ".similar-jobs")
	default:
		return common
	}
}
