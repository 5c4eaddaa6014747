package zarf

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ComponentStatus is the deployment status zarf reports for a component.
type ComponentStatus string

const (
	ComponentStatusDeploying ComponentStatus = "Deploying"
	ComponentStatusSucceeded ComponentStatus = "Succeeded"
	ComponentStatusFailed    ComponentStatus = "Failed"
	ComponentStatusRemoving  ComponentStatus = "Removing"
)

// WebhookStatus is the status of one webhook run for one component.
type WebhookStatus string

const (
	WebhookStatusRunning   WebhookStatus = "Running"
	WebhookStatusSucceeded WebhookStatus = "Succeeded"
	WebhookStatusFailed    WebhookStatus = "Failed"
	WebhookStatusRemoving  WebhookStatus = "Removing"
)

// DeployedPackage is the subset of zarf's deployed package record that is
// read or written here.
type DeployedPackage struct {
	Name               string                         `json:"name"`
	Data               Package                        `json:"data"`
	Generation         int                            `json:"generation"`
	DeployedComponents []DeployedComponent            `json:"deployedComponents"`
	ComponentWebhooks  map[string]map[string]*Webhook `json:"componentWebhooks,omitempty"`
}

type Package struct {
	Components []Component `json:"components"`
}

type Component struct {
	Name   string   `json:"name"`
	Images []string `json:"images,omitempty"`
}

type DeployedComponent struct {
	Name               string          `json:"name"`
	Status             ComponentStatus `json:"status"`
	ObservedGeneration int             `json:"observedGeneration"`
}

// Webhook records the outcome of a webhook for a component at a package
// generation.
type Webhook struct {
	Name                string        `json:"name"`
	Status              WebhookStatus `json:"status"`
	ObservedGeneration  int           `json:"observedGeneration"`
	WaitDurationSeconds int           `json:"waitDurationSeconds,omitempty"`
}

// State is the subset of the zarf-state secret that is read here.
type State struct {
	RegistryInfo RegistryInfo `json:"registryInfo"`
}

type RegistryInfo struct {
	Address string `json:"address"`

	// InternalRegistry is set when zarf runs the registry itself.
	InternalRegistry bool `json:"internalRegistry"`
}
