package zarf

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// Webhook returns the record of webhookName for component, or nil.
func (p *DeployedPackage) Webhook(component, webhookName string) *Webhook {
	return p.ComponentWebhooks[component][webhookName]
}

// StartWebhook marks webhookName as running for component at the current
// generation. Records of other webhooks for the component are kept.
func (p *DeployedPackage) StartWebhook(component, webhookName string) {
	if p.ComponentWebhooks == nil {
		p.ComponentWebhooks = map[string]map[string]*Webhook{}
	}

	if p.ComponentWebhooks[component] == nil {
		p.ComponentWebhooks[component] = map[string]*Webhook{}
	}

	p.ComponentWebhooks[component][webhookName] = &Webhook{
		Name:               webhookName,
		Status:             WebhookStatusRunning,
		ObservedGeneration: p.Generation,
	}
}

// FinishWebhook moves a running record started at generation to status. It
// returns false, leaving the record untouched, if the package has moved to
// another generation or the record is no longer running at generation.
func (p *DeployedPackage) FinishWebhook(component, webhookName string, generation int, status WebhookStatus) bool {
	if p.Generation != generation {
		return false
	}

	wh := p.Webhook(component, webhookName)
	if wh == nil || wh.ObservedGeneration != generation || wh.Status != WebhookStatusRunning {
		return false
	}

	wh.Status = status
	return true
}
