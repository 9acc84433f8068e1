package area

// AuditAreas is the hand-maintained configuration for the targeted
// audit: the onboarding flow and the nutrition section, the two
// release-critical surfaces. Order here is report order.
func AuditAreas() []Area {
	return []Area{
		{
			Name: "Onboarding",
			Patterns: []string{
				"src/screens/OnboardingScreen.js",
				"src/components/HealthDisclaimer.jsx",
				"src/components/LegalDocumentView.tsx",
			},
			KeyPrefixes: []string{
				"onboarding.",
				"subscription.",
				"error.",
			},
		},
		{
			Name: "Nutrition_Diets",
			Patterns: []string{
				"src/screens/DietsScreen.js",
				"src/screens/DietProgramDetailScreen.tsx",
				"src/screens/DietProgramProgressScreen.tsx",
				"src/screens/DietProgramsListScreen.tsx",
				"src/components/programs/DietsTabContent.tsx",
				"src/components/programs/SuggestProgramCard.tsx",
				"src/components/HistoricalDietsCarousel.tsx",
			},
			KeyPrefixes: []string{
				"diets.",
				"dietPrograms.",
				"diets_",
				"errors.startProgram",
				"errors.stopProgram",
				"errors.pauseProgram",
				"errors.completeDay",
			},
		},
		{
			Name: "Nutrition_Lifestyles",
			Patterns: []string{
				"src/screens/LifestyleDetailScreen.tsx",
				"src/features/lifestyles/components/LifestyleDetailScreen.tsx",
				"src/features/lifestyles/components/LifestyleTabContent.tsx",
				"src/features/lifestyles/components/LifestyleCard.tsx",
				"src/features/lifestyles/components/CategoryChips.tsx",
				"src/features/lifestyles/components/DisclaimerBanner.tsx",
				"src/features/lifestyles/components/TrendingCarousel.tsx",
			},
			KeyPrefixes: []string{
				"lifestyles.",
				"dietPrograms.",
				"errors.",
			},
		},
		{
			Name: "Nutrition_Tracker",
			Patterns: []string{
				"src/screens/DietProgramProgressScreen.tsx",
				"src/components/dashboard/ActiveDietWidget.js",
			},
			KeyPrefixes: []string{
				"dietPrograms.",
				"diets.tracker.",
				"dashboard.activeDiet.",
			},
		},
		{
			Name: "Paywall",
			Patterns: []string{
				"src/components/PaywallModal.tsx",
			},
			KeyPrefixes: []string{
				"paywall.",
				"limits.",
			},
		},
	}
}

// ScanAreas is the broad configuration used by the whole-tree scan to
// group hardcode findings and flag call sites in critical screens.
func ScanAreas() []Area {
	return []Area{
		{
			Name: "Onboarding",
			Patterns: []string{
				"OnboardingScreen.js",
			},
		},
		{
			Name: "Nutrition",
			Patterns: []string{
				"DietsScreen.js",
				"LifestyleDetailScreen.tsx",
				"DietProgramDetailScreen.tsx",
			},
		},
		{
			Name: "Dashboard",
			Patterns: []string{
				"src/screens/DashboardScreen.js",
				"src/components/dashboard/**/*.js",
				"src/components/UsageSummary.tsx",
				"src/components/ProfileModal.tsx",
			},
		},
		{
			Name: "Analysis",
			Patterns: []string{
				"src/screens/AnalysisResultsScreen.js",
				"src/components/AnalysisFlow.tsx",
				"src/components/AnalysisResults.tsx",
				"src/components/AnalysisComponent.tsx",
			},
		},
		{
			Name: "Gallery",
			Patterns: []string{
				"src/screens/GalleryScreen.js",
			},
		},
		{
			Name: "Profile",
			Patterns: []string{
				"src/screens/ProfileScreen.js",
				"src/screens/ExpertProfileScreen.js",
			},
		},
		{
			Name: "Auth",
			Patterns: []string{
				"src/components/AuthScreen.js",
				"src/components/IncidentNotificationScreen.tsx",
			},
		},
		{
			Name: "Common",
			Patterns: []string{
				"src/components/ErrorBoundary.tsx",
				"src/components/GracefulDegradationWrapper.tsx",
			},
		},
	}
}
