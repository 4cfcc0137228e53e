package catalog

// queryOperations lists the read-only catalog entries in the order used by
// "query all". The field selections mirror what the Unraid web UI requests.
var queryOperations = []Operation{
	{
		Name:        "info",
		Kind:        KindQuery,
		Description: "Server information: OS, CPU, memory, board, and versions",
		Document: `query ServerInfo {
  info {
    os {
      platform
      distro
      release
      kernel
      arch
      hostname
      uptime
    }
    cpu {
      manufacturer
      brand
      vendor
      family
      model
      speed
      speedmin
      speedmax
      cores
      threads
      processors
      socket
      cache
    }
    memory {
      total
      free
      used
      active
      available
      buffcache
      swaptotal
      swapused
      swapfree
      layout {
        size
        bank
        type
        clockSpeed
        manufacturer
      }
    }
    baseboard {
      manufacturer
      model
      version
      serial
    }
    system {
      manufacturer
      model
      version
      serial
    }
    versions {
      unraid
      kernel
      docker
    }
  }
}`,
	},
	{
		Name:        "array",
		Kind:        KindQuery,
		Description: "Array state, capacity, and per-disk detail",
		Document: `query ArrayStatus {
  array {
    state
    capacity {
      kilobytes {
        free
        used
        total
      }
      disks {
        free
        used
        total
      }
    }
    boot {
      id
      name
      device
      size
      temp
      rotational
      fsSize
      fsFree
      fsUsed
      type
    }
    parities {
      id
      name
      device
      size
      temp
      status
      rotational
      type
    }
    disks {
      id
      name
      device
      size
      status
      type
      temp
      rotational
      fsSize
      fsFree
      fsUsed
      numReads
      numWrites
      numErrors
    }
    caches {
      id
      name
      device
      size
      temp
      status
      rotational
      fsSize
      fsFree
      fsUsed
      type
    }
  }
}`,
	},
	{
		Name:        "docker",
		Kind:        KindQuery,
		Description: "Docker containers and their port mappings",
		Document: `query DockerContainers {
  docker {
    containers {
      id
      names
      image
      state
      status
      autoStart
      ports {
        ip
        privatePort
        publicPort
        type
      }
    }
  }
}`,
	},
	{
		Name:        "disks",
		Kind:        KindQuery,
		Description: "Physical disks with temperature and SMART status",
		Document: `query Disks {
  disks {
    device
    name
    type
    size
    vendor
    temperature
    smartStatus
  }
}`,
	},
	{
		Name:        "network",
		Kind:        KindQuery,
		Description: "Network interfaces and access URLs",
		Document: `query NetworkInterfaces {
  network {
    iface
    ifaceName
    ipv4
    ipv6
    mac
    operstate
    type
    duplex
    speed
    accessUrls {
      type
      name
      ipv4
      ipv6
    }
  }
}`,
	},
	{
		Name:        "network-detailed",
		Kind:        KindQuery,
		Description: "All network devices with link-level detail",
		Document: `query NetworkDevices {
  info {
    devices {
      network {
        id
        iface
        ifaceName
        ipv4
        ipv6
        mac
        internal
        operstate
        type
        duplex
        mtu
        speed
        carrierChanges
      }
    }
  }
}`,
	},
	{
		Name:        "shares",
		Kind:        KindQuery,
		Description: "User shares with size and free space",
		Document: `query Shares {
  shares {
    name
    comment
    free
    size
    used
  }
}`,
	},
	{
		Name:        "vms",
		Kind:        KindQuery,
		Description: "Virtual machine domains and their state",
		Document: `query VirtualMachines {
  vms {
    domain {
      uuid
      name
      state
    }
  }
}`,
	},
	{
		Name:        "parity",
		Kind:        KindQuery,
		Description: "Parity check history",
		Document: `query ParityHistory {
  parityHistory {
    date
    duration
    speed
    status
    errors
  }
}`,
	},
	{
		Name:        "vars",
		Kind:        KindQuery,
		Description: "System variables and settings",
		Document: `query SystemVars {
  vars {
    version
    name
    timeZone
    security
    workgroup
    domain
    sysModel
    useSsl
    port
    portssl
    startArray
    spindownDelay
    shareCount
    shareSmbCount
    shareNfsCount
    shareAfpCount
  }
}`,
	},
	{
		Name:        "me",
		Kind:        KindQuery,
		Description: "The user the API key belongs to",
		Document: `query CurrentUser {
  me {
    id
    name
    description
    roles
    permissions {
      resource
      actions
    }
  }
}`,
	},
	{
		Name:        "apikeys",
		Kind:        KindQuery,
		Description: "All API keys and their permissions",
		Document: `query ApiKeys {
  apiKeys {
    id
    name
    description
    roles
    createdAt
    permissions {
      resource
      actions
    }
  }
}`,
	},
	{
		Name:        "notifications",
		Kind:        KindQuery,
		Description: "Notification list and unread/archive overview",
		Document: `query Notifications($type: NotificationType!, $importance: Importance, $limit: Int!) {
  notifications {
    list(filter: { type: $type, importance: $importance, offset: 0, limit: $limit }) {
      id
      title
      subject
      description
      importance
      link
      type
      timestamp
      formattedTimestamp
    }
    overview {
      unread {
        info
        warning
        alert
        total
      }
      archive {
        info
        warning
        alert
        total
      }
    }
  }
}`,
		Args: []Arg{
			{Name: "type", Required: true},
			{Name: "importance"},
			{Name: "limit", Required: true},
		},
	},
}
