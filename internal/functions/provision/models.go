// internal/functions/provision/models.go
package provision

// Request lifecycle types delivered by the infrastructure platform.
const (
	RequestCreate = "Create"
	RequestUpdate = "Update"
	RequestDelete = "Delete"
)

// Custom actions this hook implements.
const (
	ActionConfigureConnectBot = "configureConnectBot"
	ActionConfigureWebsite    = "configureWebsite"
	ActionConfigureIndexFile  = "configureIndexFile"
)

const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Event is the custom-resource lifecycle payload.
type Event struct {
	RequestType        string            `json:"RequestType"`
	ResponseURL        string            `json:"ResponseURL"`
	StackID            string            `json:"StackId"`
	RequestID          string            `json:"RequestId"`
	LogicalResourceID  string            `json:"LogicalResourceId"`
	ResourceType       string            `json:"ResourceType,omitempty"`
	ResourceProperties map[string]string `json:"ResourceProperties"`
}

// Resource property keys.
const (
	propCustomAction = "customAction"
	propDestBucket   = "destS3Bucket"
	propDestPrefix   = "destS3KeyPrefix"
	propBotAliasArn  = "botAliasArn"
	propInstanceID   = "instanceId"
	propAPIID        = "apId"
	propRegion       = "Region"
	propFlowID       = "flowId"
	propEnableAttach = "enableAttach"
)

// completion is the payload PUT to the caller-supplied callback URL exactly
// once per invocation.
type completion struct {
	Status             string            `json:"Status"`
	Reason             string            `json:"Reason"`
	PhysicalResourceID string            `json:"PhysicalResourceId"`
	StackID            string            `json:"StackId"`
	RequestID          string            `json:"RequestId"`
	LogicalResourceID  string            `json:"LogicalResourceId"`
	Data               map[string]string `json:"Data"`
}
