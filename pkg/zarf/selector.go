package zarf

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ComponentRef pairs a component declared in the package with its live
// deployment status.
type ComponentRef struct {
	Component Component
	Deployed  DeployedComponent
}

// SelectReadyComponent returns the first deployed component, in
// deployedComponents order, that is deploying, declares images and has not
// yet been handled by webhookName at the package's current generation.
func SelectReadyComponent(p *DeployedPackage, webhookName string) (*ComponentRef, bool) {
	componentsByName := make(map[string]Component, len(p.Data.Components))
	for _, c := range p.Data.Components {
		componentsByName[c.Name] = c
	}

	for _, dc := range p.DeployedComponents {
		c, found := componentsByName[dc.Name]
		if !found || len(c.Images) == 0 {
			continue
		}

		if dc.Status != ComponentStatusDeploying {
			continue
		}

		if wh := p.Webhook(dc.Name, webhookName); wh != nil && wh.ObservedGeneration == p.Generation {
			continue
		}

		return &ComponentRef{Component: c, Deployed: dc}, true
	}

	return nil, false
}
