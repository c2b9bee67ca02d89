package domain

// ProjectType is the category of software product being estimated.
type ProjectType string

// Complexity is a coarse scope tier applied as a multiplier.
type Complexity string

// Feature is an optional capability priced additively.
type Feature string

// Platform is a mobile delivery target.
type Platform string

// Tech is an implementation technology carrying a price adjustment.
type Tech string

const (
	ProjectMobile   ProjectType = "mobile"
	ProjectWeb      ProjectType = "web"
	ProjectTelegram ProjectType = "telegram"
	ProjectDesktop  ProjectType = "desktop"
	ProjectOther    ProjectType = "other"
)

const (
	ComplexityMVP        Complexity = "mvp"
	ComplexityStandard   Complexity = "standard"
	ComplexityEnterprise Complexity = "enterprise"
)

const (
	FeatureCamera        Feature = "camera"
	FeatureGPS           Feature = "gps"
	FeatureNotifications Feature = "notifications"
	FeaturePayments      Feature = "payments"
	FeatureChat          Feature = "chat"
	FeatureOffline       Feature = "offline"
)

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

const (
	TechReact       Tech = "react"
	TechNextJS      Tech = "nextjs"
	TechVue         Tech = "vue"
	TechAngular     Tech = "angular"
	TechFlutter     Tech = "flutter"
	TechReactNative Tech = "react_native"
	TechSwift       Tech = "swift"
	TechKotlin      Tech = "kotlin"
	TechNodeJS      Tech = "nodejs"
	TechPython      Tech = "python"
	TechGolang      Tech = "golang"
	TechElectron    Tech = "electron"
)

// ProjectTypes lists every category in display order.
func ProjectTypes() []ProjectType {
	return []ProjectType{ProjectMobile, ProjectWeb, ProjectTelegram, ProjectDesktop, ProjectOther}
}

// Complexities lists every tier in ascending order.
func Complexities() []Complexity {
	return []Complexity{ComplexityMVP, ComplexityStandard, ComplexityEnterprise}
}

// Features lists every priced feature.
func Features() []Feature {
	return []Feature{
		FeatureCamera,
		FeatureGPS,
		FeatureNotifications,
		FeaturePayments,
		FeatureChat,
		FeatureOffline,
	}
}

// Platforms lists every mobile target.
func Platforms() []Platform {
	return []Platform{PlatformIOS, PlatformAndroid}
}

// Techs lists every technology with a known adjustment.
func Techs() []Tech {
	return []Tech{
		TechReact,
		TechNextJS,
		TechVue,
		TechAngular,
		TechFlutter,
		TechReactNative,
		TechSwift,
		TechKotlin,
		TechNodeJS,
		TechPython,
		TechGolang,
		TechElectron,
	}
}

// IsValid reports whether p is a known category.
func (p ProjectType) IsValid() bool {
	switch p {
	case ProjectMobile, ProjectWeb, ProjectTelegram, ProjectDesktop, ProjectOther:
		return true
	default:
		return false
	}
}

// IsValid reports whether c is a known tier.
func (c Complexity) IsValid() bool {
	switch c {
	case ComplexityMVP, ComplexityStandard, ComplexityEnterprise:
		return true
	default:
		return false
	}
}

// IsValid reports whether p is a known mobile target.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid:
		return true
	default:
		return false
	}
}
