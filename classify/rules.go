// rules.go carries the built-in rule sets. The keyword lists are the
// heuristic vocabulary used for marketing, newsletter, social, spam, and
// work detection, expressed as wildcard patterns.

package classify

// Category names used by the built-in rule sets.
const (
	CategoryMarketing   = "marketing"
	CategoryNewsletter  = "newsletter"
	CategorySocial      = "social"
	CategorySpam        = "spam"
	CategoryWork        = "work"
	CategoryUnsubscribe = "unsubscribe"
)

// DefaultRules returns the built-in rule sets. Callers may modify the
// returned value freely; every call builds a fresh copy.
func DefaultRules() []RuleSet {
	return []RuleSet{
		{
			Category: CategoryMarketing,
			Rules: []Rule{
				{
					Name:  "marketing-domain",
					Field: FieldSenderEmail,
					Patterns: []string{
						"*@marketing.*", "*@promo.*", "*@sales.*", "*@offers.*",
						"*@deals.*", "*@newsletter.*", "*@updates.*",
					},
					Weight: 2,
				},
				{
					Name:  "automated-sender",
					Field: FieldSenderName,
					Patterns: []string{
						"*no-reply*", "*noreply*", "*donotreply*", "*donot-reply*",
					},
					Weight: 1,
				},
				{
					Name:  "promotional-language",
					Field: FieldSubject,
					Patterns: []string{
						"*sale*", "*discount*", "*offer*", "*deal*", "*promotion*",
						"*special*", "*limited*", "*exclusive*", "*% off*",
						"*buy now*", "*order now*", "*free*", "*bonus*", "*gift*",
					},
					Weight: 2,
				},
				{
					Name:  "urgency",
					Field: FieldSubject,
					Patterns: []string{
						"*limited time*", "*act now*", "*last chance*",
						"*expires*", "*ending soon*", "*while supplies last*",
					},
					Weight: 1,
				},
				{
					Name:  "call-to-action",
					Field: FieldSnippet,
					Patterns: []string{
						"*click here*", "*learn more*", "*shop now*",
						"*sign up*", "*subscribe*", "*become a member*",
					},
					Weight: 1,
				},
				{
					Name:  "seasonal-campaign",
					Field: FieldSubject,
					Patterns: []string{
						"*black friday*", "*cyber monday*", "*flash sale*",
						"*daily deal*", "*deal of the day*", "*clearance*",
					},
					Weight: 1,
				},
			},
		},
		{
			Category: CategoryNewsletter,
			Rules: []Rule{
				{
					Name:  "newsletter-subject",
					Field: FieldSubject,
					Patterns: []string{
						"*newsletter*", "*digest*", "*weekly*update*",
						"*monthly*update*", "*issue #*", "*edition*",
					},
					Weight: 2,
				},
				{
					Name:  "newsletter-sender",
					Field: FieldSenderName,
					Patterns: []string{
						"*newsletter*", "*digest*", "*weekly*",
					},
					Weight: 1,
				},
			},
		},
		{
			Category: CategorySocial,
			Rules: []Rule{
				{
					Name:  "social-domain",
					Field: FieldSenderEmail,
					Patterns: []string{
						"*@facebookmail.com", "*@linkedin.com", "*@twitter.com",
						"*@x.com", "*@instagram.com", "*@pinterest.com",
						"*@reddit.com",
					},
					Weight: 3,
				},
				{
					Name:  "social-activity",
					Field: FieldSubject,
					Patterns: []string{
						"*friend request*", "*mentioned you*", "*tagged you*",
						"*new follower*", "*liked your*", "*commented on*",
						"*invitation*connect*",
					},
					Weight: 2,
				},
			},
		},
		{
			Category: CategorySpam,
			Rules: []Rule{
				{
					Name:  "spam-subject",
					Field: FieldSubject,
					Patterns: []string{
						"*winner*", "*congratulations*", "*you have won*",
						"*claim your*", "*lottery*", "*million*",
						"*urgent response*",
					},
					Weight: 2,
				},
				{
					Name:  "phishing-snippet",
					Field: FieldSnippet,
					Patterns: []string{
						"*wire transfer*", "*verify your account*",
						"*account*suspended*", "*confirm your*password*",
					},
					Weight: 2,
				},
			},
		},
		{
			Category: CategoryWork,
			Rules: []Rule{
				{
					Name:  "work-subject",
					Field: FieldSubject,
					Patterns: []string{
						"*meeting*", "*agenda*", "*minutes*", "*deadline*",
						"*project*update*", "*invoice*", "*review request*",
						"*standup*", "*sprint*",
					},
					Weight: 2,
				},
				{
					Name:  "scheduling-snippet",
					Field: FieldSnippet,
					Patterns: []string{
						"*calendar*", "*reschedule*", "*availability*",
						"*conference room*", "*joining*call*",
					},
					Weight: 1,
				},
			},
		},
		{
			Category: CategoryUnsubscribe,
			Rules: []Rule{
				{
					Name:  "unsubscribe-text",
					Field: FieldSnippet,
					Patterns: []string{
						"unsubscribe", "opt out", "opt-out", "remove list",
						"stop email", "manage subscription", "email preference",
						"preference center", "stop receiving", "no longer want",
						"email settings",
					},
					Weight: 1,
				},
			},
		},
	}
}
