package catalog

// Messages returned for operations the current Unraid GraphQL schema does
// not implement. These entries never reach the network.
const (
	dockerControlUnsupported = "Docker container control operations are not currently supported by the Unraid GraphQL API"
	vmControlUnsupported     = "VM control operations are not currently supported by the Unraid GraphQL API"
)

var mutationOperations = []Operation{
	// System control.
	{
		Name:        "system.reboot",
		Kind:        KindMutation,
		Description: "Reboot the Unraid server",
		Document:    `mutation Reboot { reboot }`,
	},
	{
		Name:        "system.shutdown",
		Kind:        KindMutation,
		Description: "Shut down the Unraid server",
		Document:    `mutation Shutdown { shutdown }`,
	},

	// Array control.
	{
		Name:        "array.start",
		Kind:        KindMutation,
		Description: "Start the array",
		Document:    `mutation StartArray { startArray { state } }`,
	},
	{
		Name:        "array.stop",
		Kind:        KindMutation,
		Description: "Stop the array",
		Document:    `mutation StopArray { stopArray { state } }`,
	},

	// Parity control.
	{
		Name:        "parity.start",
		Kind:        KindMutation,
		Description: "Start a parity check, optionally correcting errors",
		Document:    `mutation StartParityCheck($correct: Boolean!) { startParityCheck(correct: $correct) }`,
		Args:        []Arg{{Name: "correct", Required: true}},
	},
	{
		Name:        "parity.pause",
		Kind:        KindMutation,
		Description: "Pause a running parity check",
		Document:    `mutation PauseParityCheck { pauseParityCheck }`,
	},
	{
		Name:        "parity.resume",
		Kind:        KindMutation,
		Description: "Resume a paused parity check",
		Document:    `mutation ResumeParityCheck { resumeParityCheck }`,
	},
	{
		Name:        "parity.cancel",
		Kind:        KindMutation,
		Description: "Cancel a running parity check",
		Document:    `mutation CancelParityCheck { cancelParityCheck }`,
	},

	// User management.
	{
		Name:        "user.add",
		Kind:        KindMutation,
		Description: "Create a user",
		Document: `mutation AddUser($input: AddUserInput!) {
  addUser(input: $input) {
    id
    name
    description
    roles
  }
}`,
		Args: []Arg{{Name: "input", Required: true}},
	},
	{
		Name:        "user.delete",
		Kind:        KindMutation,
		Description: "Delete a user",
		Document: `mutation DeleteUser($input: DeleteUserInput!) {
  deleteUser(input: $input) {
    id
    name
  }
}`,
		Args: []Arg{{Name: "input", Required: true}},
	},

	// API key management.
	{
		Name:        "apikey.create",
		Kind:        KindMutation,
		Description: "Create an API key",
		Document: `mutation CreateApiKey($input: CreateApiKeyInput!) {
  createApiKey(input: $input) {
    id
    key
    name
    description
    roles
    createdAt
  }
}`,
		Args: []Arg{{Name: "input", Required: true}},
	},

	// Notification management.
	{
		Name:        "notification.create",
		Kind:        KindMutation,
		Description: "Create a notification",
		Document: `mutation CreateNotification($input: NotificationData!) {
  createNotification(input: $input) {
    id
    title
    subject
    description
    importance
    timestamp
    formattedTimestamp
  }
}`,
		Args: []Arg{{Name: "input", Required: true}},
	},
	{
		Name:        "notification.archive",
		Kind:        KindMutation,
		Description: "Archive a notification",
		Document: `mutation ArchiveNotification($id: ID!) {
  archiveNotification(id: $id) {
    id
    title
    type
  }
}`,
		Args: []Arg{{Name: "id", Required: true}},
	},
	{
		Name:        "notification.archive-all",
		Kind:        KindMutation,
		Description: "Archive all notifications, optionally by importance",
		Document: `mutation ArchiveAll($importance: Importance) {
  archiveAll(importance: $importance) {
    unread {
      total
    }
    archive {
      total
    }
  }
}`,
		Args: []Arg{{Name: "importance"}},
	},

	// Remote access.
	{
		Name:        "remote-access.setup",
		Kind:        KindMutation,
		Description: "Configure remote access",
		Document: `mutation SetupRemoteAccess($input: SetupRemoteAccessInput!) {
  setupRemoteAccess(input: $input)
}`,
		Args: []Arg{{Name: "input", Required: true}},
	},

	// Docker container control. Not implemented by the current remote
	// schema; kept in the catalog so the CLI surface is stable if the API
	// gains them.
	{
		Name:        "docker.start",
		Kind:        KindMutation,
		Description: "Start a Docker container",
		Args:        []Arg{{Name: "id", Required: true}},
		Unsupported: dockerControlUnsupported,
	},
	{
		Name:        "docker.stop",
		Kind:        KindMutation,
		Description: "Stop a Docker container",
		Args:        []Arg{{Name: "id", Required: true}},
		Unsupported: dockerControlUnsupported,
	},
	{
		Name:        "docker.restart",
		Kind:        KindMutation,
		Description: "Restart a Docker container",
		Args:        []Arg{{Name: "id", Required: true}},
		Unsupported: dockerControlUnsupported,
	},

	// VM control. Same situation as Docker container control.
	{
		Name:        "vm.start",
		Kind:        KindMutation,
		Description: "Start a virtual machine",
		Args:        []Arg{{Name: "uuid", Required: true}},
		Unsupported: vmControlUnsupported,
	},
	{
		Name:        "vm.stop",
		Kind:        KindMutation,
		Description: "Stop a virtual machine, optionally forcing power off",
		Args:        []Arg{{Name: "uuid", Required: true}, {Name: "force"}},
		Unsupported: vmControlUnsupported,
	},
	{
		Name:        "vm.pause",
		Kind:        KindMutation,
		Description: "Pause a virtual machine",
		Args:        []Arg{{Name: "uuid", Required: true}},
		Unsupported: vmControlUnsupported,
	},
	{
		Name:        "vm.resume",
		Kind:        KindMutation,
		Description: "Resume a paused virtual machine",
		Args:        []Arg{{Name: "uuid", Required: true}},
		Unsupported: vmControlUnsupported,
	},
}
